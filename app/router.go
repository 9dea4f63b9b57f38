package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// isPath ensures the routing path is in the expected format. Each message
// declares the path it is routed by.
var isPath = regexp.MustCompile(`^[a-z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the registered handler.
type Router struct {
	handlers map[string]remit.Handler
}

var _ remit.Registry = (*Router)(nil)
var _ remit.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]remit.Handler),
	}
}

// Handle implements remit.Registry interface. Registering a message with an
// invalid path or registering a path twice panics, as both are programmer
// errors.
func (r *Router) Handle(m remit.Msg, h remit.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid routing path %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("routing path %q is already registered", path))
	}
	r.handlers[path] = h
}

// Handler returns the registered Handler for processing of the given message.
// If no handler was registered for this message type, a handler that always
// fails with a not found error is returned.
func (r *Router) Handler(m remit.Msg) remit.Handler {
	path := m.Path()
	if h, ok := r.handlers[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler, based on the message path.
func (r *Router) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg).Check(ctx, db, tx)
}

// Deliver dispatches to the proper handler, based on the message path.
func (r *Router) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg).Deliver(ctx, db, tx)
}

// notFoundHandler always declines to process a message. It responds with a
// not found error, carrying the message path it was created with.
type notFoundHandler string

func (path notFoundHandler) Check(remit.Context, remit.KVStore, remit.Tx) (*remit.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(remit.Context, remit.KVStore, remit.Tx) (*remit.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
