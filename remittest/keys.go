package remittest

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/crypto"
)

func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

func NewCondition() remit.Condition {
	return NewKey().PublicKey().Condition()
}
