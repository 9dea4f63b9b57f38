package migration

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
)

func (c *Configuration) Validate() error {
	if err := c.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	return nil
}

func mustLoadConf(db gconf.ReadStore) Configuration {
	var conf Configuration
	if err := gconf.Load(db, "migration", &conf); err != nil {
		err = errors.Wrap(err, "load configuration")
		panic(err)
	}
	return conf
}

// CurrentAdmin returns the migration admin address as configured. This
// address is a good default for authorizing any administrative task, for
// example the first update of an extension configuration.
func CurrentAdmin(db remit.ReadOnlyKVStore) (remit.Address, error) {
	var conf Configuration
	if err := gconf.Load(db, "migration", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return conf.Admin, nil
}
