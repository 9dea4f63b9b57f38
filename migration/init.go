package migration

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ remit.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis and save it to the
// database.
func (Initializer) FromGenesis(opts remit.Options, params remit.GenesisParams, kv remit.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "migration", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	// The migration package schema must always be initialized so that the
	// schema upgrade messages can be processed.
	MustInitPkg(kv, "migration")

	var pkgs []string
	if err := opts.ReadOptions("initialize_schema", &pkgs); err != nil {
		return errors.Wrap(err, "read initialize_schema")
	}
	MustInitPkg(kv, pkgs...)
	return nil
}
