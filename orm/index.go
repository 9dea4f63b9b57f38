package orm

import (
	"bytes"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// indPrefix is a separate namespace for all indexes,
// so they cannot shadow bucket data
const indPrefix = "_i."

// Indexer calculates the secondary index key for a given object
type Indexer func(Object) ([]byte, error)

// MultiKeyIndexer calculates any number of secondary index keys
// for a given object
type MultiKeyIndexer func(Object) ([][]byte, error)

// Index represents a secondary index on some data.
// It is indexed by an arbitrary key returned by Indexer.
// The value is one primary key (unique),
// Or an array of primary keys (!unique).
type Index struct {
	name   string
	id     []byte
	unique bool
	index  MultiKeyIndexer
	refKey func([]byte) []byte
}

var _ Indexed = Index{}

// NewIndex constructs an index with a single key Indexer.
// Indexer calculates the index for an object
// unique enforces a unique constraint on the index
// refKey calculates the absolute dbkey for a ref
func NewIndex(name string, indexer Indexer, unique bool, refKey func([]byte) []byte) Index {
	return NewMultiKeyIndex(name, asMultiKeyIndexer(indexer), unique, refKey)
}

// NewMultiKeyIndex constructs an index with a MultiKeyIndexer.
// MultiKeyIndexer calculates the indexes for an object
// unique enforces a unique constraint on each index
// refKey calculates the absolute dbkey for a ref
func NewMultiKeyIndex(name string, indexer MultiKeyIndexer, unique bool, refKey func([]byte) []byte) Index {
	// TODO: index name must be [a-z_]
	return Index{
		name:   name,
		id:     append([]byte(indPrefix+name), ':'),
		index:  indexer,
		unique: unique,
		refKey: refKey,
	}
}

func asMultiKeyIndexer(indexer Indexer) MultiKeyIndexer {
	return func(obj Object) ([][]byte, error) {
		key, err := indexer(obj)
		if err != nil {
			return nil, err
		}
		if key == nil {
			return nil, nil
		}
		return [][]byte{key}, nil
	}
}

// IndexKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (i Index) IndexKey(key []byte) []byte {
	l := len(i.id)
	out := make([]byte, l+len(key))
	copy(out, i.id)
	copy(out[l:], key)
	return out
}

// Update handles updating the reference to the object in
// the secondary index.
//
// prev == nil means insert
// save == nil means delete
// both == nil is an error
// both != nil is a move, and the primary key may not change
func (i Index) Update(db remit.KVStore, prev Object, save Object) error {
	type s struct{ a, b bool }
	sw := s{prev == nil, save == nil}
	switch sw {
	case s{true, true}:
		return errors.Wrap(errors.ErrHuman, "update requires at least one non-nil object")
	case s{true, false}:
		keys, err := i.index(save)
		if err != nil {
			return err
		}
		for _, key := range keys {
			if err := i.insert(db, key, save.Key()); err != nil {
				return err
			}
		}
		return nil
	case s{false, true}:
		keys, err := i.index(prev)
		if err != nil {
			return err
		}
		for _, key := range keys {
			if err := i.remove(db, key, prev.Key()); err != nil {
				return err
			}
		}
		return nil
	case s{false, false}:
		return i.move(db, prev, save)
	}
	return errors.Wrap(errors.ErrHuman, "you have violated the rules of boolean logic")
}

// GetLike calculates the indexes for the given pattern, and
// returns a list of all pk that match any of them (nil when empty)
func (i Index) GetLike(db remit.ReadOnlyKVStore, pattern Object) ([][]byte, error) {
	indexes, err := i.index(pattern)
	if err != nil {
		return nil, err
	}
	var res [][]byte
	for _, index := range indexes {
		pks, err := i.GetAt(db, index)
		if err != nil {
			return nil, err
		}
		res = append(res, pks...)
	}
	return deduplicate(res), nil
}

// GetAt returns a list of all pk at that index (may be nil), or an error
func (i Index) GetAt(db remit.ReadOnlyKVStore, index []byte) ([][]byte, error) {
	key := i.IndexKey(index)
	val := db.Get(key)
	if val == nil {
		return nil, nil
	}
	return i.parseRefs(val)
}

// GetPrefix returns all references with an index that
// begins with the given prefix, in index order
func (i Index) GetPrefix(db remit.ReadOnlyKVStore, prefix []byte) ([][]byte, error) {
	dbPrefix := i.IndexKey(prefix)
	itr := db.Iterator(prefixRange(dbPrefix))
	defer itr.Close()

	var res [][]byte
	for ; itr.Valid(); itr.Next() {
		refs, err := i.parseRefs(itr.Value())
		if err != nil {
			return nil, err
		}
		res = append(res, refs...)
	}
	return res, nil
}

// Query handles queries from the QueryRouter
func (i Index) Query(db remit.ReadOnlyKVStore, mod string,
	data []byte) ([]remit.Model, error) {

	switch mod {
	case remit.KeyQueryMod:
		refs, err := i.GetAt(db, data)
		if err != nil {
			return nil, err
		}
		return i.loadRefs(db, refs)
	case remit.PrefixQueryMod:
		refs, err := i.GetPrefix(db, data)
		if err != nil {
			return nil, err
		}
		return i.loadRefs(db, refs)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

func (i Index) loadRefs(db remit.ReadOnlyKVStore,
	refs [][]byte) ([]remit.Model, error) {

	if len(refs) == 0 {
		return nil, nil
	}
	if i.refKey == nil {
		return nil, errors.Wrapf(errors.ErrHuman, "no refkey on index %s", i.name)
	}
	res := make([]remit.Model, len(refs))
	for j, ref := range refs {
		key := i.refKey(ref)
		res[j] = remit.Model{
			Key:   key,
			Value: db.Get(key),
		}
	}
	return res, nil
}

func (i Index) parseRefs(val []byte) ([][]byte, error) {
	if i.unique {
		return [][]byte{val}, nil
	}
	var data MultiRef
	if err := data.Unmarshal(val); err != nil {
		return nil, errors.Wrapf(errors.ErrState, "parsing refs on index %s: %s", i.name, err)
	}
	return data.Refs, nil
}

// insert adds a reference from the given index key to the pk.
// Empty index keys are not stored at all.
func (i Index) insert(db remit.KVStore, index []byte, pk []byte) error {
	if len(index) == 0 {
		return nil
	}

	key := i.IndexKey(index)
	val := db.Get(key)

	if i.unique {
		if val != nil {
			return errors.Wrapf(errors.ErrDuplicate, "unique index %s", i.name)
		}
		db.Set(key, pk)
		return nil
	}

	var data MultiRef
	if val != nil {
		if err := data.Unmarshal(val); err != nil {
			return errors.Wrapf(errors.ErrState, "parsing refs on index %s: %s", i.name, err)
		}
	}
	if err := data.Add(pk); err != nil {
		return err
	}
	save, err := data.Marshal()
	if err != nil {
		return err
	}
	db.Set(key, save)
	return nil
}

// remove drops the reference from the given index key to the pk.
// It is an error if the reference is not stored.
func (i Index) remove(db remit.KVStore, index []byte, pk []byte) error {
	if len(index) == 0 {
		return nil
	}

	key := i.IndexKey(index)
	val := db.Get(key)
	if val == nil {
		return errors.Wrapf(errors.ErrNotFound, "no reference on index %s", i.name)
	}

	if i.unique {
		db.Delete(key)
		return nil
	}

	var data MultiRef
	if err := data.Unmarshal(val); err != nil {
		return errors.Wrapf(errors.ErrState, "parsing refs on index %s: %s", i.name, err)
	}
	if err := data.Remove(pk); err != nil {
		return err
	}
	if len(data.Refs) == 0 {
		db.Delete(key)
		return nil
	}
	save, err := data.Marshal()
	if err != nil {
		return err
	}
	db.Set(key, save)
	return nil
}

func (i Index) move(db remit.KVStore, prev Object, save Object) error {
	// if the primary key is not equal, we have a problem
	if !bytes.Equal(prev.Key(), save.Key()) {
		return errors.Wrap(errors.ErrImmutable, "cannot modify the primary key of an object")
	}

	oldKeys, err := i.index(prev)
	if err != nil {
		return err
	}
	newKeys, err := i.index(save)
	if err != nil {
		return err
	}

	// new keys are added before old ones are removed, a failed
	// unique constraint must leave the old references intact
	for _, key := range subtract(newKeys, oldKeys) {
		if err := i.insert(db, key, save.Key()); err != nil {
			return err
		}
	}
	// then remove the keys that are no longer produced
	for _, key := range subtract(oldKeys, newKeys) {
		if err := i.remove(db, key, prev.Key()); err != nil {
			return err
		}
	}
	return nil
}

// deduplicate returns a new list with duplicate elements removed,
// the order of the remaining elements is preserved
func deduplicate(refs [][]byte) [][]byte {
	if refs == nil {
		return nil
	}
	res := make([][]byte, 0, len(refs))
	for _, ref := range refs {
		if !contains(res, ref) {
			res = append(res, ref)
		}
	}
	return res
}

// subtract returns all elements of minuend that are not in subtrahend
func subtract(minuend [][]byte, subtrahend [][]byte) [][]byte {
	if minuend == nil {
		return nil
	}
	res := make([][]byte, 0, len(minuend))
	for _, m := range minuend {
		if !contains(subtrahend, m) {
			res = append(res, m)
		}
	}
	return res
}

func contains(set [][]byte, elem []byte) bool {
	for _, e := range set {
		if bytes.Equal(e, elem) {
			return true
		}
	}
	return false
}
