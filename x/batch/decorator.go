package batch

import (
	"strings"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

//----------------- Decorator ----------------
//
// This is just a binding from the functionality into the
// Application stack, not much business logic here.

// Decorator iterates through batch transaction messages and passes them down
// the stack one by one. Results of all messages are combined into a single
// response.
type Decorator struct {
}

var _ remit.Decorator = Decorator{}

// NewDecorator returns a batch transaction decorator
func NewDecorator() Decorator {
	return Decorator{}
}

// BatchTx wraps the original transaction, overriding its message with a
// single message of the batch.
type BatchTx struct {
	remit.Tx
	Msg remit.Msg
}

func (tx *BatchTx) GetMsg() (remit.Msg, error) {
	return tx.Msg, nil
}

// Check iterates through messages in a batch transaction and passes them
// down the stack
func (d Decorator) Check(ctx remit.Context, store remit.KVStore, tx remit.Tx, next remit.Checker) (*remit.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}

	batchMsg, ok := msg.(Msg)
	if !ok {
		return next.Check(ctx, store, tx)
	}
	if err := batchMsg.Validate(); err != nil {
		return nil, err
	}
	msgList, err := batchMsg.MsgList()
	if err != nil {
		return nil, err
	}

	checks := make([]*remit.CheckResult, len(msgList))
	for i, m := range msgList {
		checks[i], err = next.Check(ctx, store, &BatchTx{Tx: tx, Msg: m})
		if err != nil {
			return nil, err
		}
	}
	return d.combineChecks(checks)
}

// combineChecks joins the data with a ByteArrayList
// and the log messages with \n
func (*Decorator) combineChecks(checks []*remit.CheckResult) (*remit.CheckResult, error) {
	datas := make([][]byte, len(checks))
	logs := make([]string, len(checks))
	var allocated, payments int64
	var fee coin.Coin
	for i, r := range checks {
		datas[i] = r.Data
		logs[i] = r.Log
		allocated += r.GasAllocated
		payments += r.GasPayment

		combined, err := fee.Add(r.RequiredFee)
		if err != nil {
			return nil, err
		}
		fee = combined
	}

	data, err := (&ByteArrayList{Elements: datas}).Marshal()
	if err != nil {
		return nil, err
	}

	return &remit.CheckResult{
		Data:         data,
		Log:          strings.Join(logs, "\n"),
		GasAllocated: allocated,
		GasPayment:   payments,
		RequiredFee:  fee,
	}, nil
}

// Deliver iterates through messages in a batch transaction and passes them
// down the stack
func (d Decorator) Deliver(ctx remit.Context, store remit.KVStore, tx remit.Tx, next remit.Deliverer) (*remit.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}

	batchMsg, ok := msg.(Msg)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}
	if err := batchMsg.Validate(); err != nil {
		return nil, err
	}
	msgList, err := batchMsg.MsgList()
	if err != nil {
		return nil, err
	}

	delivers := make([]*remit.DeliverResult, len(msgList))
	for i, m := range msgList {
		delivers[i], err = next.Deliver(ctx, store, &BatchTx{Tx: tx, Msg: m})
		if err != nil {
			return nil, err
		}
	}
	return d.combineDelivers(delivers)
}

// combineDelivers joins the data with a ByteArrayList
// and the log messages with \n
func (*Decorator) combineDelivers(delivers []*remit.DeliverResult) (*remit.DeliverResult, error) {
	datas := make([][]byte, len(delivers))
	logs := make([]string, len(delivers))
	var used int64
	var diffs []abci.ValidatorUpdate
	var tags []common.KVPair
	var fee coin.Coin
	for i, r := range delivers {
		datas[i] = r.Data
		logs[i] = r.Log
		used += r.GasUsed
		if len(r.Diff) > 0 {
			diffs = append(diffs, r.Diff...)
		}
		if len(r.Tags) > 0 {
			tags = append(tags, r.Tags...)
		}

		combined, err := fee.Add(r.RequiredFee)
		if err != nil {
			return nil, err
		}
		fee = combined
	}

	data, err := (&ByteArrayList{Elements: datas}).Marshal()
	if err != nil {
		return nil, err
	}

	return &remit.DeliverResult{
		Data:        data,
		Log:         strings.Join(logs, "\n"),
		GasUsed:     used,
		Diff:        diffs,
		Tags:        tags,
		RequiredFee: fee,
	}, nil
}
