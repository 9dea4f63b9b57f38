package guard

import (
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
	"github.com/iov-one/remit/migration"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPausedHandler(t *testing.T) {
	owner := remittest.NewCondition()
	stranger := remittest.NewCondition()

	cases := map[string]struct {
		conf       *Configuration
		signers    []remit.Condition
		msg        remit.Msg
		wantErr    *errors.Error
		wantPaused bool
	}{
		"owner can pause": {
			conf: &Configuration{
				Metadata: &remit.Metadata{Schema: 1},
				Owner:    owner.Address(),
			},
			signers:    []remit.Condition{owner},
			msg:        &SetPausedMsg{Metadata: &remit.Metadata{Schema: 1}, Paused: true},
			wantPaused: true,
		},
		"owner can unpause": {
			conf: &Configuration{
				Metadata: &remit.Metadata{Schema: 1},
				Owner:    owner.Address(),
				Paused:   true,
			},
			signers:    []remit.Condition{owner},
			msg:        &SetPausedMsg{Metadata: &remit.Metadata{Schema: 1}, Paused: false},
			wantPaused: false,
		},
		"stranger cannot pause": {
			conf: &Configuration{
				Metadata: &remit.Metadata{Schema: 1},
				Owner:    owner.Address(),
			},
			signers: []remit.Condition{stranger},
			msg:     &SetPausedMsg{Metadata: &remit.Metadata{Schema: 1}, Paused: true},
			wantErr: errors.ErrUnauthorized,
		},
		"no owner configured": {
			conf: &Configuration{
				Metadata: &remit.Metadata{Schema: 1},
			},
			signers: []remit.Condition{owner},
			msg:     &SetPausedMsg{Metadata: &remit.Metadata{Schema: 1}, Paused: true},
			wantErr: errors.ErrUnauthorized,
		},
		"no configuration": {
			conf:    nil,
			signers: []remit.Condition{owner},
			msg:     &SetPausedMsg{Metadata: &remit.Metadata{Schema: 1}, Paused: true},
			wantErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kv := store.MemStore()
			migration.MustInitPkg(kv, "guard")
			if tc.conf != nil {
				require.NoError(t, gconf.Save(kv, "guard", tc.conf))
			}

			auth := &remittest.Auth{Signers: tc.signers}
			h := setPausedHandler{auth: auth}
			tx := &remittest.Tx{Msg: tc.msg}

			if _, err := h.Check(nil, kv, tx); !tc.wantErr.Is(err) {
				t.Fatalf("check returned an unexpected error: %+v", err)
			}
			if _, err := h.Deliver(nil, kv, tx); !tc.wantErr.Is(err) {
				t.Fatalf("deliver returned an unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}

			var conf Configuration
			require.NoError(t, gconf.Load(kv, "guard", &conf))
			assert.Equal(t, tc.wantPaused, conf.Paused)
		})
	}
}

func TestUpdateConfigurationHandler(t *testing.T) {
	owner := remittest.NewCondition()
	newOwner := remittest.NewCondition()

	kv := store.MemStore()
	migration.MustInitPkg(kv, "guard")
	require.NoError(t, gconf.Save(kv, "guard", &Configuration{
		Metadata: &remit.Metadata{Schema: 1},
		Owner:    owner.Address(),
	}))

	auth := &remittest.Auth{Signer: owner}
	h := NewConfigHandler(auth)

	tx := &remittest.Tx{Msg: &UpdateConfigurationMsg{
		Metadata: &remit.Metadata{Schema: 1},
		Patch: &Configuration{
			Owner: newOwner.Address(),
		},
	}}
	_, err := h.Deliver(nil, kv, tx)
	require.NoError(t, err)

	var conf Configuration
	require.NoError(t, gconf.Load(kv, "guard", &conf))
	assert.Equal(t, newOwner.Address(), conf.Owner)
	// Untouched fields keep their value.
	assert.False(t, conf.Paused)
}
