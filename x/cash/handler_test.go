package cash

import (
	"testing"

	"github.com/iov-one/remit"
	coin "github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/migration"
	"github.com/iov-one/remit/orm"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendHandler(t *testing.T) {
	foo := coin.NewCoin(100, 0, "FOO")
	some := coin.NewCoin(300, 0, "SOME")

	perm := remittest.NewCondition()
	perm2 := remittest.NewCondition()

	cases := map[string]struct {
		signers        []remit.Condition
		initState      []orm.Object
		msg            remit.Msg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
	}{
		"nil message": {
			msg:            nil,
			wantCheckErr:   errors.ErrState,
			wantDeliverErr: errors.ErrState,
		},
		"empty message": {
			msg:            &SendMsg{Metadata: &remit.Metadata{Schema: 1}},
			wantCheckErr:   errors.ErrAmount,
			wantDeliverErr: errors.ErrAmount,
		},
		"no permission": {
			msg: &SendMsg{
				Metadata:    &remit.Metadata{Schema: 1},
				Amount:      &foo,
				Source:      perm.Address(),
				Destination: perm2.Address(),
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"sender has no account": {
			signers: []remit.Condition{perm},
			msg: &SendMsg{
				Metadata:    &remit.Metadata{Schema: 1},
				Amount:      &foo,
				Source:      perm.Address(),
				Destination: perm2.Address(),
			},
			// we don't check funds in check
			wantDeliverErr: errors.ErrEmpty,
		},
		"sender too poor": {
			signers:   []remit.Condition{perm},
			initState: []orm.Object{mustWalletWith(perm.Address(), &some)},
			msg: &SendMsg{
				Metadata:    &remit.Metadata{Schema: 1},
				Amount:      &foo,
				Source:      perm.Address(),
				Destination: perm2.Address(),
			},
			wantDeliverErr: errors.ErrInsufficientAmount,
		},
		"sender got cash": {
			signers:   []remit.Condition{perm},
			initState: []orm.Object{mustWalletWith(perm.Address(), &foo)},
			msg: &SendMsg{
				Metadata:    &remit.Metadata{Schema: 1},
				Amount:      &foo,
				Source:      perm.Address(),
				Destination: perm2.Address(),
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			auth := &remittest.Auth{Signers: tc.signers}
			controller := NewController(NewBucket())
			h := NewSendHandler(auth, controller)

			kv := store.MemStore()
			migration.MustInitPkg(kv, "cash")
			bucket := NewBucket()
			for _, wallet := range tc.initState {
				require.NoError(t, bucket.Save(kv, wallet))
			}

			tx := &remittest.Tx{Msg: tc.msg}

			_, err := h.Check(nil, kv, tx)
			if !tc.wantCheckErr.Is(err) {
				t.Fatalf("check returned an unexpected error: %+v", err)
			}
			_, err = h.Deliver(nil, kv, tx)
			if !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver returned an unexpected error: %+v", err)
			}

			if tc.wantDeliverErr == nil && tc.msg != nil {
				msg := tc.msg.(*SendMsg)
				w := getWallet(t, kv, msg.Destination)
				assert.True(t, w.Contains(*msg.Amount))
			}
		})
	}
}

func mustWalletWith(key remit.Address, coins ...*coin.Coin) orm.Object {
	obj, err := WalletWith(key, coins...)
	if err != nil {
		panic(err)
	}
	return obj
}
