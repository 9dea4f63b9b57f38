package sigs

import (
	"github.com/iov-one/remit/errors"
)

var (
	// ErrInvalidSequence is when the sequence number does not match
	// the expected value for this user.
	ErrInvalidSequence = errors.Register(120, "invalid sequence")
)
