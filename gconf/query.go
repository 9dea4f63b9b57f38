package gconf

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// RegisterQuery exposes the configuration singleton of the given package
// under the "/configuration/<pkg>" path. The raw stored record is
// returned, clients unmarshal it into the package's Configuration type.
func RegisterQuery(pkg string, qr remit.QueryRouter) {
	qr.Register("/configuration/"+pkg, queryHandler{pkg: pkg})
}

type queryHandler struct {
	pkg string
}

var _ remit.QueryHandler = queryHandler{}

func (h queryHandler) Query(db remit.ReadOnlyKVStore, mod string, data []byte) ([]remit.Model, error) {
	if mod != remit.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unsupported query mod: %q", mod)
	}
	key := []byte("_c:" + h.pkg)
	value := db.Get(key)
	// return nothing on miss
	if value == nil {
		return nil, nil
	}
	return []remit.Model{{Key: key, Value: value}}, nil
}
