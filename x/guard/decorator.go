package guard

import (
	"strings"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// Decorator rejects all state changing transactions while the pause flag
// is set. Messages of this extension pass through, otherwise the
// administrator could never unpause.
type Decorator struct{}

var _ remit.Decorator = Decorator{}

// NewDecorator returns a pause gate decorator.
func NewDecorator() Decorator {
	return Decorator{}
}

func (d Decorator) Check(ctx remit.Context, store remit.KVStore, tx remit.Tx, next remit.Checker) (*remit.CheckResult, error) {
	if err := assertNotPaused(store, tx); err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

func (d Decorator) Deliver(ctx remit.Context, store remit.KVStore, tx remit.Tx, next remit.Deliverer) (*remit.DeliverResult, error) {
	if err := assertNotPaused(store, tx); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func assertNotPaused(db remit.KVStore, tx remit.Tx) error {
	conf, err := loadConf(db)
	switch {
	case errors.ErrNotFound.Is(err):
		// Without a configuration the gate is disabled.
		return nil
	case err != nil:
		return err
	}
	if !conf.Paused {
		return nil
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "get message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrState, "transaction contains no message")
	}
	if strings.HasPrefix(msg.Path(), "guard/") {
		return nil
	}
	return errors.Wrap(ErrPaused, msg.Path())
}
