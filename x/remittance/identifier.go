package remittance

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// IdentifierLength is the byte length of a transfer identifier.
const IdentifierLength = sha256.Size

// Identifier is an opaque, collision resistant transfer key. It binds the
// chain, both participants and the shared secret together so that the same
// secret produces unrelated identifiers for different parties or chains.
type Identifier []byte

// DeriveIdentifier computes the transfer identifier for the given
// participants and secret. The chain ID scopes the derivation so an
// identifier is never valid on another network.
func DeriveIdentifier(chainID string, sender, recipient remit.Address, secret []byte) (Identifier, error) {
	if err := sender.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidParticipant, "sender")
	}
	if err := recipient.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidParticipant, "recipient")
	}
	if !remit.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %q", chainID)
	}

	// Every variable length component is length framed so that no two
	// distinct inputs can produce the same byte stream.
	h := sha256.New()
	h.Write([]byte{uint8(len(chainID))})
	h.Write([]byte(chainID))
	h.Write([]byte{uint8(len(sender))})
	h.Write(sender)
	h.Write([]byte{uint8(len(recipient))})
	h.Write(recipient)
	h.Write(secret)
	return Identifier(h.Sum(nil)), nil
}

// Equals compares two identifiers in constant time.
func (id Identifier) Equals(other Identifier) bool {
	return subtle.ConstantTimeCompare(id, other) == 1
}

// Validate returns an error if this is not a well formed identifier.
func (id Identifier) Validate() error {
	switch l := len(id); {
	case l == 0:
		return errors.Wrap(errors.ErrEmpty, "identifier missing")
	case l != IdentifierLength:
		return errors.Wrapf(errors.ErrInput, "identifier must be %d bytes", IdentifierLength)
	}
	return nil
}
