package guard

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
)

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ remit.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial configuration from genesis and save it to
// the database. A genesis without guard configuration disables the gate.
func (*Initializer) FromGenesis(opts remit.Options, params remit.GenesisParams, kv remit.KVStore) error {
	switch err := gconf.InitConfig(kv, opts, "guard", &Configuration{}); {
	case err == nil:
		return nil
	case errors.ErrNotFound.Is(err):
		return nil
	default:
		return errors.Wrap(err, "init config")
	}
}
