package cash

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/migration"
	"github.com/iov-one/remit/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

func init() {
	migration.MustRegister(1, &Set{}, migration.NoModification)
}

var _ orm.CloneableData = (*Set)(nil)

// Validate requires that all coins are in alphabetical order
func (s *Set) Validate() error {
	if err := s.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return coin.Coins(s.Coins).Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() orm.CloneableData {
	return &Set{
		Metadata: s.Metadata.Copy(),
		Coins:    coin.Coins(s.Coins).Clone(),
	}
}

// SetCoins allows to set coins held by this set.
func (s *Set) SetCoins(coins []*coin.Coin) {
	s.Coins = coins
}

// Coinage is any model that allows getting and setting coins,
// Save and Validate happens separately
type Coinage interface {
	GetCoins() []*coin.Coin
	SetCoins([]*coin.Coin)
}

// AsCoinage safely casts the value stored in the object to a
// Coinage, returns nil on empty object
func AsCoinage(obj orm.Object) Coinage {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(Coinage)
}

// AsCoins extracts the coins from the object content
func AsCoins(obj orm.Object) coin.Coins {
	c := AsCoinage(obj)
	if c == nil {
		return nil
	}
	return coin.Coins(c.GetCoins())
}

// Add modifies the wallet to add Coin c
func Add(wallet Coinage, c coin.Coin) error {
	cs, err := coin.Coins(wallet.GetCoins()).Add(c)
	if err != nil {
		return err
	}
	wallet.SetCoins(cs)
	return nil
}

// Subtract modifies the wallet to remove Coin c
func Subtract(wallet Coinage, c coin.Coin) error {
	return Add(wallet, c.Negative())
}

// Concat combines the coins to make sure they are sorted
// and rounded off, with no duplicates or 0 values.
func Concat(wallet Coinage, coins coin.Coins) error {
	joint, err := coin.Coins(wallet.GetCoins()).Combine(coins)
	if err != nil {
		return err
	}
	wallet.SetCoins(joint)
	return nil
}

// NewWallet creates an empty wallet with this address
// serving as key
func NewWallet(key remit.Address) orm.Object {
	return orm.NewSimpleObj(key, &Set{
		Metadata: &remit.Metadata{Schema: 1},
	})
}

// WalletWith creates a wallet with a balance
func WalletWith(key remit.Address, coins ...*coin.Coin) (orm.Object, error) {
	obj := NewWallet(key)
	err := Concat(AsCoinage(obj), coins)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

//--- cash.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	migration.Bucket
}

var _ WalletBucket = Bucket{}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: migration.NewBucket("cash", BucketName, NewWallet(nil)),
	}
}

// GetOrCreate will return the wallet under this address,
// or create an empty one if none is stored yet
func (b Bucket) GetOrCreate(db remit.KVStore, key remit.Address) (orm.Object, error) {
	obj, err := b.Get(db, key)
	if err == nil && obj == nil {
		obj = NewWallet(key)
	}
	return obj, err
}

// WalletBucket is what we expect to be able to do with wallets
// The object it returns must support AsCoinage (only checked runtime)
type WalletBucket interface {
	GetOrCreate(db remit.KVStore, key remit.Address) (orm.Object, error)
	Get(db remit.ReadOnlyKVStore, key []byte) (orm.Object, error)
	Save(db remit.KVStore, obj orm.Object) error
}
