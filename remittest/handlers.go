package remittest

import "github.com/iov-one/remit"

type Handler struct {
	checkCall   int
	CheckResult remit.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult remit.DeliverResult
	DeliverErr    error
}

var _ remit.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	h.checkCall++
	return &h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	h.deliverCall++
	return &h.DeliverResult, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
