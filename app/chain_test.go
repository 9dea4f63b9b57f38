package app_test

import (
	"context"
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/app"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/x/utils"
	"github.com/stretchr/testify/assert"
)

// panicAtHeightDecorator panics when the block height reaches its value
type panicAtHeightDecorator int64

var _ remit.Decorator = panicAtHeightDecorator(0)

func (p panicAtHeightDecorator) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx, next remit.Checker) (*remit.CheckResult, error) {
	if val, _ := remit.GetHeight(ctx); val >= int64(p) {
		panic("too high")
	}
	return next.Check(ctx, db, tx)
}

func (p panicAtHeightDecorator) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx, next remit.Deliverer) (*remit.DeliverResult, error) {
	if val, _ := remit.GetHeight(ctx); val >= int64(p) {
		panic("too high")
	}
	return next.Deliver(ctx, db, tx)
}

func TestChain(t *testing.T) {
	c1 := &remittest.Decorator{}
	c2 := &remittest.Decorator{}
	c3 := &remittest.Decorator{}
	h := &remittest.Handler{}

	stack := app.ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		panicAtHeightDecorator(6),
		c3,
	).WithHandler(h)

	bg := context.Background()
	tx := &remittest.Tx{Msg: &remittest.Msg{RoutePath: "test/chain"}}

	// make some calls, make sure it is fine
	_, err := stack.Check(bg, nil, tx)
	assert.NoError(t, err)
	ctx := remit.WithHeight(bg, 4)
	_, err = stack.Deliver(ctx, nil, tx)
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// above the panic height the recovery decorator must turn the panic
	// into an error before it reaches the callers
	ctx = remit.WithHeight(bg, 8)
	_, err = stack.Check(ctx, nil, tx)
	assert.Error(t, err)
	_, err = stack.Deliver(ctx, nil, tx)
	assert.Error(t, err)

	assert.Equal(t, 4, c1.CallCount())
	assert.Equal(t, 4, c2.CallCount())
	// the panic cuts the stack before reaching c3 and the handler
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}
