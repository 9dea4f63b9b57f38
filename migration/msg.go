package migration

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

func init() {
	MustRegister(1, &UpgradeSchemaMsg{}, NoModification)
}

var _ remit.Msg = (*UpgradeSchemaMsg)(nil)

func (msg *UpgradeSchemaMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if msg.Pkg == "" {
		return errors.Wrap(errors.ErrEmpty, "pkg is required")
	}
	if msg.ToVersion == 0 {
		return errors.Wrap(errors.ErrEmpty, "to version is required")
	}
	return nil
}

func (UpgradeSchemaMsg) Path() string {
	return "migration/upgrade_schema"
}
