package std

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/x/batch"
)

// Boilerplate needed to bridge the ExecuteBatchMsg protobuf type into
// something usable by the batch extension.

var _ batch.Msg = (*ExecuteBatchMsg)(nil)

func (*ExecuteBatchMsg) Path() string {
	return batch.PathExecuteBatchMsg
}

func (msg *ExecuteBatchMsg) Validate() error {
	return batch.Validate(msg)
}

func (msg *ExecuteBatchMsg) MsgList() ([]remit.Msg, error) {
	var err error
	messages := make([]remit.Msg, len(msg.Messages))
	for i, m := range msg.Messages {
		messages[i], err = remit.ExtractMsgFromSum(m.GetSum())
		if err != nil {
			return nil, err
		}
	}
	return messages, nil
}
