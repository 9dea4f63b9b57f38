package remittance

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ remit.Initializer = (*Initializer)(nil)

// FromGenesis will parse the initial configuration from genesis and save
// it to the database. The configuration is mandatory, an application
// without it cannot process any transfer.
func (*Initializer) FromGenesis(opts remit.Options, params remit.GenesisParams, kv remit.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "remittance", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}
	return nil
}
