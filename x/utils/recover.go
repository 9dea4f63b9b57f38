package utils

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ remit.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx remit.Context, store remit.KVStore, tx remit.Tx, next remit.Checker) (_ *remit.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx remit.Context, store remit.KVStore, tx remit.Tx, next remit.Deliverer) (_ *remit.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
