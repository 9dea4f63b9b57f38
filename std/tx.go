package std

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (remit.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ remit.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns a single message instance that is represented by this
// transaction. This is a convenience access to the sum field.
func (tx *Tx) GetMsg() (remit.Msg, error) {
	return remit.ExtractMsgFromSum(tx.GetSum())
}

// GetSignBytes returns the bytes to sign. Signatures are not part of
// the signed payload, so they are cleared for the serialization.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	tx.Signatures = sigs
	return bz, err
}
