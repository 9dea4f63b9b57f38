package remittance

import (
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if len(c.Owner) != 0 {
		errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	}
	errs = errors.AppendField(errs, "CollectorAddress", c.CollectorAddress.Validate())
	errs = errors.AppendField(errs, "Fee", c.Fee.Validate())
	if !c.Fee.IsNonNegative() {
		errs = errors.Append(errs, errors.Field("Fee", errors.ErrAmount, "fee cannot be negative"))
	}
	if c.Fee.IsZero() && !c.AllowZeroFee {
		errs = errors.Append(errs, errors.Field("Fee", errors.ErrAmount, "zero fee is not allowed"))
	}
	if c.MinDuration <= 0 {
		errs = errors.Append(errs, errors.Field("MinDuration", errors.ErrInput, "minimum duration must be greater than zero"))
	}
	if c.MaxDuration < c.MinDuration {
		errs = errors.Append(errs, errors.Field("MaxDuration", errors.ErrInput, "maximum duration cannot be less than minimum duration"))
	}
	return errs
}

func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "remittance", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
