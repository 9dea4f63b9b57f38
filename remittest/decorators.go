package remittest

import "github.com/iov-one/remit"

// Decorator is a mock implementation of the remit.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ remit.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx, next remit.Checker) (*remit.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return &remit.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx, next remit.Deliverer) (*remit.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &remit.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

func Decorate(h remit.Handler, d remit.Decorator) remit.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn remit.Handler
	dc remit.Decorator
}

var _ remit.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
