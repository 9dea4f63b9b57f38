package batch

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

const (
	// PathExecuteBatchMsg is the path batch messages are routed under.
	PathExecuteBatchMsg = "batch/execute"

	// MaxBatchMessages is the maximum number of messages a single batch
	// transaction can carry.
	MaxBatchMessages = 10
)

// Msg defines a batch message. It is a message carrying a list of other
// messages that are to be processed within the same transaction.
type Msg interface {
	remit.Msg
	MsgList() ([]remit.Msg, error)
}

// Validate ensures the batch message is sane. Message implementations should
// call it from their own Validate method.
func Validate(msg Msg) error {
	l, err := msg.MsgList()
	if err != nil {
		return errors.Wrap(err, "cannot retrieve batch messages")
	}
	if len(l) > MaxBatchMessages {
		return errors.Wrapf(errors.ErrMsg, "transaction is too large, max %d messages", MaxBatchMessages)
	}
	return nil
}
