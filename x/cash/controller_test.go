package cash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/remit"
	coin "github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/migration"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/store"
)

func getWallet(t *testing.T, kv remit.KVStore, addr remit.Address) coin.Coins {
	t.Helper()
	bucket := NewBucket()
	res, err := bucket.Get(kv, addr)
	require.NoError(t, err)
	return AsCoins(res)
}

func TestIssueCoins(t *testing.T) {
	kv := store.MemStore()
	migration.MustInitPkg(kv, "cash")

	addr := remittest.NewCondition().Address()
	addr2 := remittest.NewCondition().Address()

	controller := NewController(NewBucket())

	plus := coin.NewCoin(500, 1000, "FOO")
	minus := coin.NewCoin(-400, -600, "FOO")
	total := coin.NewCoin(100, 400, "FOO")
	other := coin.NewCoin(1, 0, "DING")

	assert.Nil(t, getWallet(t, kv, addr))
	assert.Nil(t, getWallet(t, kv, addr2))

	// issue positive
	err := controller.IssueCoins(kv, addr, plus)
	require.NoError(t, err)
	w := getWallet(t, kv, addr)
	require.NotNil(t, w)
	assert.True(t, w.Contains(plus), "%#v", w)
	assert.True(t, w.Contains(total))
	assert.False(t, w.Contains(other))
	assert.Nil(t, getWallet(t, kv, addr2))

	// issue negative
	err = controller.IssueCoins(kv, addr, minus)
	require.NoError(t, err)
	w = getWallet(t, kv, addr)
	require.NotNil(t, w)
	assert.False(t, w.Contains(plus))
	assert.True(t, w.Contains(total))
	assert.False(t, w.Contains(other))
	assert.Nil(t, getWallet(t, kv, addr2))

	// issue to other wallet
	err = controller.IssueCoins(kv, addr2, other)
	require.NoError(t, err)
	w = getWallet(t, kv, addr)
	require.NotNil(t, w)
	assert.True(t, w.Contains(total))
	assert.False(t, w.Contains(other))
	w2 := getWallet(t, kv, addr2)
	require.NotNil(t, w2)
	assert.False(t, w2.Contains(total))
	assert.True(t, w2.Contains(other))

	// set to zero is fine
	err = controller.IssueCoins(kv, addr2, other.Negative())
	require.NoError(t, err)
	w2 = getWallet(t, kv, addr2)
	assert.True(t, w2.IsEmpty())

	// overflow is rejected
	err = controller.IssueCoins(kv, addr, coin.NewCoin(coin.MaxInt, 0, "FOO"))
	assert.Error(t, err)
	w = getWallet(t, kv, addr)
	require.NotNil(t, w)
	assert.True(t, w.Contains(total))

	// balance reflects the wallet content
	cs, err := controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.True(t, cs.Contains(total))
}

func TestMoveCoins(t *testing.T) {
	kv := store.MemStore()
	migration.MustInitPkg(kv, "cash")

	addr := remittest.NewCondition().Address()
	addr2 := remittest.NewCondition().Address()
	addr3 := remittest.NewCondition().Address()

	controller := NewController(NewBucket())

	cc := "MONY"
	bank := coin.NewCoin(50000, 0, cc)
	send := coin.NewCoin(300, 0, cc)

	// can't send from an empty account
	err := controller.MoveCoins(kv, addr, addr2, send)
	require.Error(t, err)
	// so we issue money
	err = controller.IssueCoins(kv, addr, bank)
	require.NoError(t, err)

	// proper move
	err = controller.MoveCoins(kv, addr, addr2, send)
	require.NoError(t, err)
	w := getWallet(t, kv, addr)
	require.NotNil(t, w)
	assert.True(t, w.Contains(coin.NewCoin(49700, 0, cc)))
	w2 := getWallet(t, kv, addr2)
	require.NotNil(t, w2)
	assert.True(t, w2.Contains(send))
	w3 := getWallet(t, kv, addr3)
	require.Nil(t, w3)

	// cannot send negative, zero
	err = controller.MoveCoins(kv, addr2, addr3, send.Negative())
	assert.Error(t, err)
	err = controller.MoveCoins(kv, addr2, addr3, coin.NewCoin(0, 0, cc))
	assert.Error(t, err)
	w2 = getWallet(t, kv, addr2)
	assert.True(t, w2.Contains(send))

	// cannot send too much or no currency
	err = controller.MoveCoins(kv, addr2, addr3, bank)
	assert.Error(t, err)
	err = controller.MoveCoins(kv, addr2, addr3, coin.NewCoin(5, 0, "BAD"))
	assert.Error(t, err)
	w2 = getWallet(t, kv, addr2)
	assert.True(t, w2.Contains(send))

	// send all coins
	err = controller.MoveCoins(kv, addr2, addr3, send)
	assert.NoError(t, err)
	w2 = getWallet(t, kv, addr2)
	assert.True(t, w2.IsEmpty())
	w3 = getWallet(t, kv, addr3)
	assert.True(t, w3.Contains(send))
}
