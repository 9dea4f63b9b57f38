package guard

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
	"github.com/iov-one/remit/migration"
	"github.com/iov-one/remit/x"
)

// RegisterRoutes will instantiate and register all handlers in this package
func RegisterRoutes(r remit.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("guard", r)
	r.Handle(&SetPausedMsg{}, &setPausedHandler{auth: auth})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// RegisterQuery exposes the pause configuration under
// "/configuration/guard", so clients can read the flag and the owner.
func RegisterQuery(qr remit.QueryRouter) {
	gconf.RegisterQuery("guard", qr)
}

// NewConfigHandler returns a handler for the configuration patch message.
// Before a configuration exists, the schema migration admin can create one.
func NewConfigHandler(auth x.Authenticator) remit.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("guard", &conf, auth, migration.CurrentAdmin)
}

type setPausedHandler struct {
	auth x.Authenticator
}

var _ remit.Handler = (*setPausedHandler)(nil)

func (h *setPausedHandler) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &remit.CheckResult{}, nil
}

func (h *setPausedHandler) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	conf, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.Paused = msg.Paused
	if err := gconf.Save(db, "guard", &conf); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}
	return &remit.DeliverResult{}, nil
}

func (h *setPausedHandler) validate(ctx remit.Context, db remit.KVStore, tx remit.Tx) (Configuration, *SetPausedMsg, error) {
	var msg SetPausedMsg
	conf, err := loadConf(db)
	if err != nil {
		return conf, nil, err
	}
	if err := remit.LoadMsg(tx, &msg); err != nil {
		return conf, nil, errors.Wrap(err, "load msg")
	}
	if len(conf.Owner) == 0 {
		return conf, nil, errors.Wrap(errors.ErrUnauthorized, "no owner configured")
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return conf, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return conf, &msg, nil
}
