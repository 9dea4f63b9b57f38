package guard

import (
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
)

func TestValidateSetPausedMsg(t *testing.T) {
	cases := map[string]struct {
		msg     remit.Msg
		wantErr *errors.Error
	}{
		"pause": {
			msg: &SetPausedMsg{
				Metadata: &remit.Metadata{Schema: 1},
				Paused:   true,
			},
		},
		"unpause": {
			msg: &SetPausedMsg{
				Metadata: &remit.Metadata{Schema: 1},
				Paused:   false,
			},
		},
		"missing metadata": {
			msg:     &SetPausedMsg{},
			wantErr: errors.ErrMetadata,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestValidateUpdateConfigurationMsg(t *testing.T) {
	owner := remittest.NewCondition().Address()

	cases := map[string]struct {
		msg     remit.Msg
		wantErr *errors.Error
	}{
		"success": {
			msg: &UpdateConfigurationMsg{
				Metadata: &remit.Metadata{Schema: 1},
				Patch: &Configuration{
					Owner:  owner,
					Paused: true,
				},
			},
		},
		"missing patch": {
			msg: &UpdateConfigurationMsg{
				Metadata: &remit.Metadata{Schema: 1},
			},
			wantErr: errors.ErrEmpty,
		},
		"invalid owner address": {
			msg: &UpdateConfigurationMsg{
				Metadata: &remit.Metadata{Schema: 1},
				Patch: &Configuration{
					Owner: remit.Address{0x13, 0x17},
				},
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
