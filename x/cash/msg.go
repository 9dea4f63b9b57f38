package cash

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/migration"
)

func init() {
	migration.MustRegister(1, &SendMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ remit.Msg = (*SendMsg)(nil)

const (
	sendTxCost int64 = 100

	maxMemoSize int = 128
	maxRefSize  int = 64
)

// Path returns the routing path for this message.
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	var err error
	err = errors.AppendField(err, "Metadata", s.Metadata.Validate())
	if coin.IsEmpty(s.Amount) || !s.Amount.IsPositive() {
		err = errors.Append(err, errors.Wrapf(errors.ErrAmount, "non-positive send amount: %v", s.Amount))
	} else {
		err = errors.Append(err, errors.Wrap(s.Amount.Validate(), "amount"))
	}
	err = errors.Append(err, errors.Wrap(s.Source.Validate(), "source"))
	err = errors.Append(err, errors.Wrap(s.Destination.Validate(), "destination"))
	if len(s.Memo) > maxMemoSize {
		err = errors.Append(err, errors.Wrap(errors.ErrState, "memo too long"))
	}
	if len(s.Ref) > maxRefSize {
		err = errors.Append(err, errors.Wrap(errors.ErrState, "ref too long"))
	}
	return err
}

var _ remit.Msg = (*UpdateConfigurationMsg)(nil)

// Validate will skip any zero fields and validate the set ones.
func (m *UpdateConfigurationMsg) Validate() error {
	var err error
	err = errors.AppendField(err, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		return errors.Append(err, errors.Wrap(errors.ErrEmpty, "patch"))
	}
	c := m.Patch
	if len(c.Owner) != 0 {
		err = errors.Append(err, errors.Wrap(c.Owner.Validate(), "owner"))
	}
	if len(c.CollectorAddress) != 0 {
		err = errors.Append(err, errors.Wrap(c.CollectorAddress.Validate(), "collector"))
	}
	if !c.MinimalFee.IsZero() {
		err = errors.Append(err, errors.Wrap(c.MinimalFee.Validate(), "minimal fee"))
		if !c.MinimalFee.IsNonNegative() {
			err = errors.Append(err, errors.Wrap(errors.ErrState, "minimal fee cannot be negative"))
		}
	}
	return err
}

func (*UpdateConfigurationMsg) Path() string {
	return "cash/update_configuration"
}
