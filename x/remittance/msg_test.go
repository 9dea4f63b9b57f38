package remittance

import (
	"strings"
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
)

func TestValidateCreateMsg(t *testing.T) {
	source := remittest.NewCondition().Address()
	recipient := remittest.NewCondition().Address()
	id := Identifier(make([]byte, IdentifierLength))

	cases := map[string]struct {
		msg     *CreateMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: &CreateMsg{
				Metadata:   &remit.Metadata{Schema: 1},
				Source:     source,
				Recipient:  recipient,
				Identifier: id,
				Deposit:    coin.NewCoinp(100, 0, "IOV"),
				Duration:   remit.UnixDuration(3600),
			},
		},
		"missing metadata": {
			msg: &CreateMsg{
				Source:     source,
				Recipient:  recipient,
				Identifier: id,
				Deposit:    coin.NewCoinp(100, 0, "IOV"),
				Duration:   remit.UnixDuration(3600),
			},
			wantErr: errors.ErrMetadata,
		},
		"missing recipient": {
			msg: &CreateMsg{
				Metadata:   &remit.Metadata{Schema: 1},
				Source:     source,
				Identifier: id,
				Deposit:    coin.NewCoinp(100, 0, "IOV"),
				Duration:   remit.UnixDuration(3600),
			},
			wantErr: ErrInvalidRecipient,
		},
		"short identifier": {
			msg: &CreateMsg{
				Metadata:   &remit.Metadata{Schema: 1},
				Source:     source,
				Recipient:  recipient,
				Identifier: Identifier([]byte{1, 2, 3}),
				Deposit:    coin.NewCoinp(100, 0, "IOV"),
				Duration:   remit.UnixDuration(3600),
			},
			wantErr: errors.ErrInput,
		},
		"missing deposit": {
			msg: &CreateMsg{
				Metadata:   &remit.Metadata{Schema: 1},
				Source:     source,
				Recipient:  recipient,
				Identifier: id,
				Duration:   remit.UnixDuration(3600),
			},
			wantErr: errors.ErrAmount,
		},
		"zero deposit": {
			msg: &CreateMsg{
				Metadata:   &remit.Metadata{Schema: 1},
				Source:     source,
				Recipient:  recipient,
				Identifier: id,
				Deposit:    coin.NewCoinp(0, 0, "IOV"),
				Duration:   remit.UnixDuration(3600),
			},
			wantErr: errors.ErrAmount,
		},
		"missing duration": {
			msg: &CreateMsg{
				Metadata:   &remit.Metadata{Schema: 1},
				Source:     source,
				Recipient:  recipient,
				Identifier: id,
				Deposit:    coin.NewCoinp(100, 0, "IOV"),
			},
			wantErr: errors.ErrInput,
		},
		"memo too long": {
			msg: &CreateMsg{
				Metadata:   &remit.Metadata{Schema: 1},
				Source:     source,
				Recipient:  recipient,
				Identifier: id,
				Deposit:    coin.NewCoinp(100, 0, "IOV"),
				Duration:   remit.UnixDuration(3600),
				Memo:       strings.Repeat("x", maxMemoSize+1),
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestValidateClaimMsg(t *testing.T) {
	sender := remittest.NewCondition().Address()

	cases := map[string]struct {
		msg     *ClaimMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: &ClaimMsg{
				Metadata: &remit.Metadata{Schema: 1},
				Sender:   sender,
				Secret:   []byte("a secret"),
			},
		},
		"missing metadata": {
			msg: &ClaimMsg{
				Sender: sender,
				Secret: []byte("a secret"),
			},
			wantErr: errors.ErrMetadata,
		},
		"missing sender": {
			msg: &ClaimMsg{
				Metadata: &remit.Metadata{Schema: 1},
				Secret:   []byte("a secret"),
			},
			wantErr: ErrInvalidParticipant,
		},
		"missing secret": {
			msg: &ClaimMsg{
				Metadata: &remit.Metadata{Schema: 1},
				Sender:   sender,
			},
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestValidateReclaimMsg(t *testing.T) {
	recipient := remittest.NewCondition().Address()

	cases := map[string]struct {
		msg     *ReclaimMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: &ReclaimMsg{
				Metadata:  &remit.Metadata{Schema: 1},
				Recipient: recipient,
				Secret:    []byte("a secret"),
			},
		},
		"missing recipient": {
			msg: &ReclaimMsg{
				Metadata: &remit.Metadata{Schema: 1},
				Secret:   []byte("a secret"),
			},
			wantErr: ErrInvalidParticipant,
		},
		"missing secret": {
			msg: &ReclaimMsg{
				Metadata:  &remit.Metadata{Schema: 1},
				Recipient: recipient,
			},
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestValidateWithdrawFeesMsg(t *testing.T) {
	msg := &WithdrawFeesMsg{Metadata: &remit.Metadata{Schema: 1}}
	if err := msg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %+v", err)
	}
	msg = &WithdrawFeesMsg{}
	if err := msg.Validate(); !errors.ErrMetadata.Is(err) {
		t.Fatalf("unexpected validation error: %+v", err)
	}
}

func TestValidateUpdateConfigurationMsg(t *testing.T) {
	msg := &UpdateConfigurationMsg{
		Metadata: &remit.Metadata{Schema: 1},
		Patch: &Configuration{
			Fee: coin.NewCoin(1, 0, "IOV"),
		},
	}
	if err := msg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %+v", err)
	}
	msg = &UpdateConfigurationMsg{Metadata: &remit.Metadata{Schema: 1}}
	if err := msg.Validate(); !errors.ErrEmpty.Is(err) {
		t.Fatalf("unexpected validation error: %+v", err)
	}
}
