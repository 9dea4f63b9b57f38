package remittance

import (
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
)

func TestConfigurationValidate(t *testing.T) {
	collector := remittest.NewCondition().Address()
	owner := remittest.NewCondition().Address()

	cases := map[string]struct {
		mod     func(*Configuration)
		wantErr *errors.Error
	}{
		"valid configuration": {
			mod: func(c *Configuration) {},
		},
		"owner is optional": {
			mod: func(c *Configuration) { c.Owner = nil },
		},
		"missing metadata": {
			mod:     func(c *Configuration) { c.Metadata = nil },
			wantErr: errors.ErrMetadata,
		},
		"missing collector": {
			mod:     func(c *Configuration) { c.CollectorAddress = nil },
			wantErr: errors.ErrEmpty,
		},
		"negative fee": {
			mod:     func(c *Configuration) { c.Fee = coin.NewCoin(-1, 0, "IOV") },
			wantErr: errors.ErrAmount,
		},
		"zero fee requires the flag": {
			mod:     func(c *Configuration) { c.Fee = coin.NewCoin(0, 0, "IOV") },
			wantErr: errors.ErrAmount,
		},
		"zero fee with the flag": {
			mod: func(c *Configuration) {
				c.Fee = coin.NewCoin(0, 0, "IOV")
				c.AllowZeroFee = true
			},
		},
		"zero minimum duration": {
			mod:     func(c *Configuration) { c.MinDuration = 0 },
			wantErr: errors.ErrInput,
		},
		"maximum below minimum": {
			mod: func(c *Configuration) {
				c.MinDuration = 100
				c.MaxDuration = 99
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			conf := &Configuration{
				Metadata:         &remit.Metadata{Schema: 1},
				Owner:            owner,
				CollectorAddress: collector,
				Fee:              coin.NewCoin(5, 0, "IOV"),
				MinDuration:      remit.UnixDuration(60),
				MaxDuration:      remit.UnixDuration(3600),
			}
			tc.mod(conf)
			if err := conf.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}
