package migration

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/orm"
)

// Bucket is a storage engine that supports and requires schema versioning. It
// enforces every model to contain schema version information and, where
// needed, migrates objects on the fly before returning them to the user.
//
// This bucket does not migrate data returned by queries. The Register and
// Query methods are using the plain orm.Bucket implementation so the data is
// returned as stored in the database. This is important for proofs to work.
// Query returned data must never be altered.
type Bucket struct {
	orm.Bucket
	packageName string
	schema      *SchemaBucket
	migrations  *register
}

// NewBucket returns a new instance of a schema aware bucket implementation.
// Package name is used to track the schema version. Bucket name is the
// namespace for the stored entity. Model is the type of the entity this
// bucket is maintaining.
func NewBucket(packageName string, bucketName string, model orm.Cloneable) Bucket {
	return Bucket{
		Bucket:      orm.NewBucket(bucketName, model),
		packageName: packageName,
		schema:      NewSchemaBucket(),
		migrations:  reg,
	}
}

// useRegister will update this bucket to use a custom register instance
// instead of the global one. This is a private method meant to be used for
// tests only.
func (svb Bucket) useRegister(r *register) Bucket {
	svb.migrations = r
	return svb
}

func (svb Bucket) Get(db remit.ReadOnlyKVStore, key []byte) (orm.Object, error) {
	obj, err := svb.Bucket.Get(db, key)
	if err != nil || obj == nil {
		return obj, err
	}
	if err := svb.migrate(db, obj); err != nil {
		return obj, errors.Wrap(err, "migrate")
	}
	return obj, nil
}

func (svb Bucket) Save(db remit.KVStore, obj orm.Object) error {
	if err := svb.migrate(db, obj); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return svb.Bucket.Save(db, obj)
}

// WithIndex returns a copy of this bucket with given index. Index is using
// the plain orm bucket implementation so the indexed data is the stored one,
// not the migrated one.
func (svb Bucket) WithIndex(name string, indexer orm.Indexer, unique bool) Bucket {
	svb.Bucket = svb.Bucket.WithIndex(name, indexer, unique)
	return svb
}

// WithMultiKeyIndex returns a copy of this bucket with given multikey index.
func (svb Bucket) WithMultiKeyIndex(name string, indexer orm.MultiKeyIndexer, unique bool) Bucket {
	svb.Bucket = svb.Bucket.WithMultiKeyIndex(name, indexer, unique)
	return svb
}

func (svb Bucket) migrate(db remit.ReadOnlyKVStore, obj orm.Object) error {
	return migrate(svb.migrations, svb.schema, svb.packageName, db, obj.Value())
}

// ModelBucket implements the orm.ModelBucket interface and provides the same
// functionality with additional model schema migration.
type ModelBucket struct {
	b           orm.ModelBucket
	packageName string
	schema      *SchemaBucket
	migrations  *register
}

var _ orm.ModelBucket = (*ModelBucket)(nil)

func NewModelBucket(packageName string, b orm.ModelBucket) *ModelBucket {
	return &ModelBucket{
		b:           b,
		packageName: packageName,
		schema:      NewSchemaBucket(),
		migrations:  reg,
	}
}

// useRegister will update this bucket to use a custom register instance
// instead of the global one. This is a private method meant to be used for
// tests only.
func (m *ModelBucket) useRegister(r *register) {
	m.migrations = r
}

func (m *ModelBucket) One(db remit.ReadOnlyKVStore, key []byte, dest orm.Model) error {
	if err := m.b.One(db, key, dest); err != nil {
		return err
	}
	if err := m.migrate(db, dest); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return nil
}

func (m *ModelBucket) Many(db remit.ReadOnlyKVStore, indexName string, key []byte, dest *[]orm.Model) error {
	if err := m.b.Many(db, indexName, key, dest); err != nil {
		return err
	}
	for i, model := range *dest {
		if err := m.migrate(db, model); err != nil {
			return errors.Wrapf(err, "migrate %d element", i)
		}
	}
	return nil
}

func (m *ModelBucket) Put(db remit.KVStore, key []byte, model orm.Model) error {
	if err := m.migrate(db, model); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return m.b.Put(db, key, model)
}

func (m *ModelBucket) Delete(db remit.KVStore, key []byte) error {
	return m.b.Delete(db, key)
}

func (m *ModelBucket) migrate(db remit.ReadOnlyKVStore, model orm.Model) error {
	return migrate(m.migrations, m.schema, m.packageName, db, model)
}

func migrate(
	migrations *register,
	schema *SchemaBucket,
	packageName string,
	db remit.ReadOnlyKVStore,
	value interface{},
) error {
	m, ok := value.(Migratable)
	if !ok {
		return errors.Wrap(errors.ErrModel, "model cannot be migrated")
	}
	currSchemaVer, err := schema.CurrentSchema(db, packageName)
	if err != nil {
		return errors.Wrapf(err, "current schema version of package %q", packageName)
	}

	meta := m.GetMetadata()
	if meta == nil {
		return errors.Wrapf(errors.ErrMetadata, "%T metadata is nil", m)
	}

	// In case of the schema not being set we assume the code is expecting
	// the current version. We can therefore set the default to the current
	// schema version.
	if meta.Schema == 0 {
		meta.Schema = currSchemaVer
		return nil
	}

	if meta.Schema > currSchemaVer {
		return errors.Wrapf(errors.ErrSchema, "model schema higher than %d", currSchemaVer)
	}

	// Migration is applied in place, directly modifying the instance.
	if err := migrations.Apply(db, m, currSchemaVer); err != nil {
		return errors.Wrap(err, "schema migration")
	}
	return nil
}

// Migrate will query the current schema of the named package and migrate the
// passed value up to the current version.
//
// Returns an error if the passed value is not Migratable, not registered with
// migrations, missing metadata, declares a schema higher than the current
// one, or if the final migrated value is invalid.
func Migrate(
	db remit.ReadOnlyKVStore,
	packageName string,
	value interface{},
) error {
	return migrate(reg, NewSchemaBucket(), packageName, db, value)
}
