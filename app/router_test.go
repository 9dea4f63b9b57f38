package app_test

import (
	"context"
	"testing"

	"github.com/iov-one/remit/app"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	r := app.NewRouter()

	counter := &remittest.Handler{}
	r.Handle(&remittest.Msg{RoutePath: "test/good"}, counter)
	r.Handle(&remittest.Msg{RoutePath: "test/bad"}, &remittest.Handler{
		CheckErr:   errors.ErrHuman,
		DeliverErr: errors.ErrHuman,
	})

	// invalid registrations must panic
	assert.Panics(t, func() { r.Handle(&remittest.Msg{RoutePath: "test/good"}, counter) })
	assert.Panics(t, func() { r.Handle(&remittest.Msg{RoutePath: "not a path"}, counter) })

	ctx := context.Background()

	tx := &remittest.Tx{Msg: &remittest.Msg{RoutePath: "test/good"}}
	_, err := r.Check(ctx, nil, tx)
	assert.NoError(t, err)
	_, err = r.Deliver(ctx, nil, tx)
	assert.NoError(t, err)
	assert.Equal(t, 2, counter.CallCount())

	// errors of the registered handler are passed through
	bad := &remittest.Tx{Msg: &remittest.Msg{RoutePath: "test/bad"}}
	_, err = r.Deliver(ctx, nil, bad)
	assert.True(t, errors.ErrHuman.Is(err))

	// an unknown path is served by the not found handler
	missing := &remittest.Tx{Msg: &remittest.Msg{RoutePath: "test/missing"}}
	_, err = r.Check(ctx, nil, missing)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Deliver(ctx, nil, missing)
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.Equal(t, 2, counter.CallCount())
}
