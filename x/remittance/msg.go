package remittance

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/migration"
)

func init() {
	migration.MustRegister(1, &CreateMsg{}, migration.NoModification)
	migration.MustRegister(1, &ClaimMsg{}, migration.NoModification)
	migration.MustRegister(1, &ReclaimMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawFeesMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

const (
	pathCreate              = "remittance/create"
	pathClaim               = "remittance/claim"
	pathReclaim             = "remittance/reclaim"
	pathWithdrawFees        = "remittance/withdraw_fees"
	pathUpdateConfiguration = "remittance/update_configuration"
)

var (
	_ remit.Msg = (*CreateMsg)(nil)
	_ remit.Msg = (*ClaimMsg)(nil)
	_ remit.Msg = (*ReclaimMsg)(nil)
	_ remit.Msg = (*WithdrawFeesMsg)(nil)
	_ remit.Msg = (*UpdateConfigurationMsg)(nil)
)

// Path implements remit.Msg interface.
func (CreateMsg) Path() string {
	return pathCreate
}

// Validate implements remit.Msg interface.
func (m *CreateMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Recipient.Validate(); err != nil {
		return errors.Wrap(ErrInvalidRecipient, "recipient")
	}
	if err := m.Identifier.Validate(); err != nil {
		return errors.Wrap(err, "identifier")
	}
	if m.Deposit == nil {
		return errors.Wrap(errors.ErrAmount, "deposit is required")
	}
	if err := m.Deposit.Validate(); err != nil {
		return errors.Wrap(err, "deposit")
	}
	if !m.Deposit.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "deposit must be positive")
	}
	if m.Duration <= 0 {
		return errors.Wrap(errors.ErrInput, "duration must be greater than zero")
	}
	if len(m.Memo) > maxMemoSize {
		return errors.Wrapf(errors.ErrInput, "memo too long: %s", m.Memo)
	}
	return nil
}

// Path implements remit.Msg interface.
func (ClaimMsg) Path() string {
	return pathClaim
}

// Validate implements remit.Msg interface.
func (m *ClaimMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Sender.Validate(); err != nil {
		return errors.Wrap(ErrInvalidParticipant, "sender")
	}
	if len(m.Secret) == 0 {
		return errors.Wrap(errors.ErrEmpty, "secret is required")
	}
	return nil
}

// Path implements remit.Msg interface.
func (ReclaimMsg) Path() string {
	return pathReclaim
}

// Validate implements remit.Msg interface.
func (m *ReclaimMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Recipient.Validate(); err != nil {
		return errors.Wrap(ErrInvalidParticipant, "recipient")
	}
	if len(m.Secret) == 0 {
		return errors.Wrap(errors.ErrEmpty, "secret is required")
	}
	return nil
}

// Path implements remit.Msg interface.
func (WithdrawFeesMsg) Path() string {
	return pathWithdrawFees
}

// Validate implements remit.Msg interface.
func (m *WithdrawFeesMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return nil
}

// Path implements remit.Msg interface.
func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfiguration
}

// Validate implements remit.Msg interface.
func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.Append(errs, errors.Field("Patch", errors.ErrEmpty, "patch is required"))
	}
	return errs
}
