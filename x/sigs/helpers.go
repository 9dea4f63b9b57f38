package sigs

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/remittest"
)

// StdTx is a minimal signed transaction implementation.
// Useful as a test double wherever a SignedTx is expected.
type StdTx struct {
	remit.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ remit.Tx = (*StdTx)(nil)

// NewStdTx wraps the given payload into a signable transaction
// with no signatures attached yet.
func NewStdTx(payload []byte) *StdTx {
	tx := &remittest.Tx{
		Msg: &remittest.Msg{
			RoutePath:  "test/std",
			Serialized: payload,
		},
	}
	return &StdTx{Tx: tx}
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the serialized message, without signatures.
func (tx StdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}
