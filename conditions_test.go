package remit_test

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionPrinting(t *testing.T) {
	Convey("condition string keeps the extension and type readable", t, func() {
		cond := remit.NewCondition("foo", "bar", []byte("ABCD123456LHB"))

		So(cond.String(), ShouldNotEqual, fmt.Sprintf("%X", []byte(cond)))
		So(cond.String(), ShouldStartWith, "foo/bar/")
	})

	Convey("malformed condition is printed as hex", t, func() {
		cond := remit.Condition("garbage")

		So(cond.String(), ShouldStartWith, "Invalid Condition")
	})
}

func TestConditionParse(t *testing.T) {
	data := []byte("some-data-here")
	cond := remit.NewCondition("sigs", "ed25519", data)

	ext, typ, gotData, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "sigs", ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, data, gotData)

	_, _, _, err = remit.Condition("foobar").Parse()
	if !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestAddressUnmarshalJSON(t *testing.T) {
	// Addresses are 20 bytes long so use a payload of that length.
	rawAddr := []byte("01234567890123456789")
	hexAddr := strings.ToUpper(fmt.Sprintf("%x", rawAddr))

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr remit.Address
	}{
		"default decoding": {
			json:     fmt.Sprintf("%q", hexAddr),
			wantAddr: remit.Address(rawAddr),
		},
		"hex decoding": {
			json:     fmt.Sprintf("\"hex:%s\"", hexAddr),
			wantAddr: remit.Address(rawAddr),
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: remit.NewCondition("foo", "bar", []byte("conditiondata")).Address(),
		},
		"invalid hex length": {
			json:    `"6865782d61646472"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrType,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero hex address": {
			json:     `"hex:"`,
			wantAddr: nil,
		},
		"zero cond address": {
			json:     `"cond:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a remit.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !reflect.DeepEqual(a, tc.wantAddr) {
				t.Fatalf("got address: %q", a)
			}
		})
	}
}

func TestAddressBech32(t *testing.T) {
	addr := remit.NewCondition("sigs", "ed25519", []byte("some-public-key")).Address()

	enc := addr.Bech32String("tiov")
	require.True(t, strings.HasPrefix(enc, "tiov1"), enc)

	raw, err := json.Marshal("bech32:" + enc)
	require.NoError(t, err)

	var got remit.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, addr, got)
}

func TestConditionUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json          string
		wantErr       *errors.Error
		wantCondition remit.Condition
	}{
		"default decoding": {
			json:          `"foo/bar/636f6e646974696f6e64617461"`,
			wantCondition: remit.NewCondition("foo", "bar", []byte("conditiondata")),
		},
		"invalid condition format": {
			json:    `"foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"zero address": {
			json:          `""`,
			wantCondition: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got remit.Condition
			err := json.Unmarshal([]byte(tc.json), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !got.Equals(tc.wantCondition) {
				t.Fatalf("expected %q but got condition: %q", tc.wantCondition, got)
			}
		})
	}
}

func TestConditionMarshalJSON(t *testing.T) {
	cases := map[string]struct {
		source   remit.Condition
		wantJson string
	}{
		"cond encoding": {
			source:   remit.NewCondition("foo", "bar", []byte("conditiondata")),
			wantJson: `"foo/bar/636F6E646974696F6E64617461"`,
		},
		"nil encoding": {
			source:   nil,
			wantJson: `""`,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := json.Marshal(tc.source)
			require.NoError(t, err)
			assert.Equal(t, tc.wantJson, string(got))
		})
	}
}
