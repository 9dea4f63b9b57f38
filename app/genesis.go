package app

import (
	"github.com/iov-one/remit"
)

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...remit.Initializer) remit.Initializer {
	return chainInitializer{inits: inits}
}

type chainInitializer struct {
	inits []remit.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts remit.Options, params remit.GenesisParams, kv remit.KVStore) error {
	for _, i := range c.inits {
		if i == nil {
			continue
		}
		if err := i.FromGenesis(opts, params, kv); err != nil {
			return err
		}
	}
	return nil
}
