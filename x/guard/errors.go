package guard

import (
	"github.com/iov-one/remit/errors"
)

var (
	// ErrPaused is returned for any state changing transaction that is
	// received while the pause flag is set.
	ErrPaused = errors.Register(1100, "service paused")
)
