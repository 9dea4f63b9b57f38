package guard

import (
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
	"github.com/iov-one/remit/migration"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/store"
	"github.com/stretchr/testify/require"
)

func TestDecorator(t *testing.T) {
	cases := map[string]struct {
		conf    *Configuration
		msg     remit.Msg
		wantErr *errors.Error
	}{
		"not paused": {
			conf: &Configuration{
				Metadata: &remit.Metadata{Schema: 1},
			},
			msg: &remittest.Msg{RoutePath: "payment/transfer"},
		},
		"no configuration means not paused": {
			conf: nil,
			msg:  &remittest.Msg{RoutePath: "payment/transfer"},
		},
		"paused rejects a foreign message": {
			conf: &Configuration{
				Metadata: &remit.Metadata{Schema: 1},
				Paused:   true,
			},
			msg:     &remittest.Msg{RoutePath: "payment/transfer"},
			wantErr: ErrPaused,
		},
		"paused passes guard messages through": {
			conf: &Configuration{
				Metadata: &remit.Metadata{Schema: 1},
				Paused:   true,
			},
			msg: &SetPausedMsg{Metadata: &remit.Metadata{Schema: 1}, Paused: false},
		},
		"paused rejects a transaction without message": {
			conf: &Configuration{
				Metadata: &remit.Metadata{Schema: 1},
				Paused:   true,
			},
			msg:     nil,
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kv := store.MemStore()
			migration.MustInitPkg(kv, "guard")
			if tc.conf != nil {
				require.NoError(t, gconf.Save(kv, "guard", tc.conf))
			}

			d := NewDecorator()
			next := &remittest.Handler{}
			tx := &remittest.Tx{Msg: tc.msg}

			if _, err := d.Check(nil, kv, tx, next); !tc.wantErr.Is(err) {
				t.Fatalf("check returned an unexpected error: %+v", err)
			}
			if _, err := d.Deliver(nil, kv, tx, next); !tc.wantErr.Is(err) {
				t.Fatalf("deliver returned an unexpected error: %+v", err)
			}

			wantCalls := 0
			if tc.wantErr == nil {
				wantCalls = 2
			}
			if got := next.CallCount(); got != wantCalls {
				t.Fatalf("unexpected number of next handler calls: %d", got)
			}
		})
	}
}
