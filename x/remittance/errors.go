package remittance

import (
	"github.com/iov-one/remit/errors"
)

var (
	// ErrInvalidParticipant is returned when an identifier derivation is
	// requested for a missing or malformed participant address.
	ErrInvalidParticipant = errors.Register(1000, "invalid participant")

	// ErrInvalidRecipient is returned when a transfer is created without
	// a valid recipient.
	ErrInvalidRecipient = errors.Register(1001, "invalid recipient")

	// ErrDuplicateIdentifier is returned when a transfer with the same
	// identifier already exists.
	ErrDuplicateIdentifier = errors.Register(1002, "duplicate identifier")

	// ErrInsufficientValue is returned when the deposit does not exceed
	// the configured fee.
	ErrInsufficientValue = errors.Register(1003, "insufficient value")

	// ErrDeadlineOutOfRange is returned when the requested transfer
	// duration is outside of the configured window.
	ErrDeadlineOutOfRange = errors.Register(1004, "deadline out of range")

	// ErrAlreadyClaimed is returned when a transfer is not in the created
	// state anymore.
	ErrAlreadyClaimed = errors.Register(1005, "already claimed")

	// ErrAccountMismatch is returned when the transaction signer is not
	// the participant allowed to perform the operation.
	ErrAccountMismatch = errors.Register(1006, "account mismatch")

	// ErrIdentifierMismatch is returned when the stored transfer does not
	// match the identity material the identifier was derived from.
	ErrIdentifierMismatch = errors.Register(1007, "identifier mismatch")

	// ErrTooEarly is returned when a reclaim is attempted before the
	// transfer deadline has passed.
	ErrTooEarly = errors.Register(1008, "too early")

	// ErrNoBalance is returned when a fee withdrawal finds no accumulated
	// fees.
	ErrNoBalance = errors.Register(1009, "no balance")

	// ErrTransferFailed is returned when moving coins failed after the
	// ledger state was already decided. The whole transaction is rolled
	// back in that case.
	ErrTransferFailed = errors.Register(1010, "transfer failed")
)
