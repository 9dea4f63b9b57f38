package guard

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/migration"
)

func init() {
	migration.MustRegister(1, &SetPausedMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ remit.Msg = (*SetPausedMsg)(nil)

func (SetPausedMsg) Path() string {
	return "guard/set_paused"
}

func (msg *SetPausedMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", msg.Metadata.Validate())
}

var _ remit.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "guard/update_configuration"
}

func (msg *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if msg.Patch == nil {
		errs = errors.Append(errs, errors.Field("Patch", errors.ErrEmpty, "patch is required"))
	} else if len(msg.Patch.Owner) != 0 {
		// All patch fields are optional, applied only when non-zero.
		errs = errors.AppendField(errs, "Owner", msg.Patch.Owner.Validate())
	}
	return errs
}
