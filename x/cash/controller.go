package cash

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
)

// Controller is the functionality needed by any extension that wants to
// move funds between accounts. CashController should work plenty fine.
type Controller interface {
	CoinMover
	Balance(remit.KVStore, remit.Address) (coin.Coins, error)
}

// CoinMover is the interface for moving coins between accounts.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them
	// to the destination account. This operation is atomic.
	MoveCoins(store remit.KVStore, src remit.Address, dest remit.Address, amount coin.Coin) error
}

// CoinMinter is an interface for creating new coins out of thin air.
type CoinMinter interface {
	// IssueCoins increase the number of funds on given account by a
	// specified amount.
	IssueCoins(store remit.KVStore, dest remit.Address, amount coin.Coin) error
}

// CashController provides a means to move coins between accounts
// stored in a wallet bucket
type CashController struct {
	bucket WalletBucket
}

// NewController returns a controller that can move coins
// between wallets in the given bucket
func NewController(bucket WalletBucket) CashController {
	return CashController{bucket: bucket}
}

// Balance returns the amount of funds stored under given account address.
func (c CashController) Balance(store remit.KVStore, src remit.Address) (coin.Coins, error) {
	state, err := c.bucket.Get(store, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get account state")
	}
	if state == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "no account")
	}
	return AsCoins(state), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c CashController) MoveCoins(store remit.KVStore,
	src remit.Address, dest remit.Address, amount coin.Coin) error {

	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %v", &amount)
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if !AsCoins(sender).Contains(amount) {
		return errors.Wrap(errors.ErrInsufficientAmount, "funds")
	}

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := Subtract(AsCoinage(sender), amount); err != nil {
		return err
	}
	if err := Add(AsCoinage(recipient), amount); err != nil {
		return err
	}

	if err := c.bucket.Save(store, sender); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c CashController) IssueCoins(store remit.KVStore,
	dest remit.Address, amount coin.Coin) error {

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := Add(AsCoinage(recipient), amount); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}
