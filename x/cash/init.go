package cash

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
)

// GenesisAccount is used to parse the json from genesis file
// use remit.Address, so address in hex, not base64
type GenesisAccount struct {
	Address remit.Address `json:"address"`
	Set
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ remit.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (*Initializer) FromGenesis(opts remit.Options, params remit.GenesisParams, kv remit.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "cash", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	accts := []GenesisAccount{}
	if err := opts.ReadOptions("cash", &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for _, acct := range accts {
		if err := setWalletCoins(kv, bucket, acct.Address, acct.Coins); err != nil {
			return err
		}
	}
	return nil
}

func setWalletCoins(kv remit.KVStore, bucket Bucket, addr remit.Address, coins []*coin.Coin) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrapf(err, "account %q", addr)
	}
	wallet, err := WalletWith(addr, coins...)
	if err != nil {
		return err
	}
	return bucket.Save(kv, wallet)
}
