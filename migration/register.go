package migration

import (
	"reflect"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// Migratable is implemented by both messages and models that support schema
// versioning. The payload declares its current schema version through the
// metadata.
type Migratable interface {
	GetMetadata() *remit.Metadata
	Validate() error
}

// Migrator is a function that migrates a data entity in place, from the
// schema version one less than registered to the registered one.
type Migrator func(remit.ReadOnlyKVStore, Migratable) error

// NoModification is a migration function that migrates data that requires no
// change. It should be used to register migrations that do not require any
// modifications.
func NoModification(remit.ReadOnlyKVStore, Migratable) error {
	return nil
}

func newRegister() *register {
	return &register{
		migrations: make(map[payloadVersion]Migrator),
	}
}

type register struct {
	migrations map[payloadVersion]Migrator
}

// payloadVersion references a message or a model at a given schema version.
type payloadVersion struct {
	payload reflect.Type
	version uint32
}

func (r *register) MustRegister(migrationTo uint32, msgOrModel Migratable, fn Migrator) {
	if err := r.Register(migrationTo, msgOrModel, fn); err != nil {
		panic(err)
	}
}

func (r *register) Register(migrationTo uint32, msgOrModel Migratable, fn Migrator) error {
	if migrationTo < 1 {
		return errors.Wrap(errors.ErrInput, "minimal schema version is one")
	}

	tp := reflect.TypeOf(msgOrModel)
	for tp.Kind() == reflect.Ptr {
		tp = tp.Elem()
	}
	if tp.Kind() != reflect.Struct {
		return errors.Wrapf(errors.ErrInput, "only struct can be migrated, got %T", msgOrModel)
	}

	pv := payloadVersion{
		version: migrationTo,
		payload: tp,
	}
	if _, ok := r.migrations[pv]; ok {
		return errors.Wrapf(errors.ErrDuplicate, "already registered: %s.%s:%d", tp.PkgPath(), tp.Name(), migrationTo)
	}
	// Migrations must be registered sequentially, so that the whole chain
	// from version one up is always available.
	if migrationTo > 1 {
		prev := payloadVersion{version: migrationTo - 1, payload: tp}
		if _, ok := r.migrations[prev]; !ok {
			return errors.Wrapf(errors.ErrInput, "missing %d version migration", migrationTo-1)
		}
	}
	r.migrations[pv] = fn
	return nil
}

// Apply updates a payload by applying all missing data migrations. Even a no
// modification migration is updating the metadata to point to the latest data
// format version.
//
// Because changes are applied directly on the passed payload, even if this
// function fails some of the data migrations might have been applied.
//
// Validation method is called only on the final version of the payload.
func (r *register) Apply(db remit.ReadOnlyKVStore, msgOrModel Migratable, migrateTo uint32) error {
	if migrateTo < 1 {
		return errors.Wrap(errors.ErrInput, "minimal schema version is one")
	}

	tp := reflect.TypeOf(msgOrModel)
	for tp.Kind() == reflect.Ptr {
		tp = tp.Elem()
	}
	if tp.Kind() != reflect.Struct {
		return errors.Wrapf(errors.ErrInput, "only struct can be migrated, got %T", msgOrModel)
	}

	meta := msgOrModel.GetMetadata()
	if meta == nil {
		return errors.Wrapf(errors.ErrMetadata, "%T metadata is nil", msgOrModel)
	}

	for v := meta.Schema + 1; v <= migrateTo; v++ {
		migrate, ok := r.migrations[payloadVersion{payload: tp, version: v}]
		if !ok {
			return errors.Wrapf(errors.ErrSchema, "migration to version %d missing", v)
		}
		if err := migrate(db, msgOrModel); err != nil {
			return errors.Wrapf(err, "migration to version %d", v)
		}
		meta.Schema = v
	}

	if err := msgOrModel.Validate(); err != nil {
		return errors.Wrap(err, "validation")
	}
	return nil
}

// reg is a globally available register instance that must be used during the
// runtime to register migration handlers.
// Register is declared as a separate type so that it can be tested without
// worrying about the global state.
var reg = newRegister()

// MustRegister registers a migration function for a given message or model at
// a given schema version. This function panics on failure. See the register
// documentation for more details.
func MustRegister(migrationTo uint32, msgOrModel Migratable, fn Migrator) {
	reg.MustRegister(migrationTo, msgOrModel, fn)
}
