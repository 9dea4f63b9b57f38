package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/iov-one/remit/store"
)

// DefaultCacheSize is the number of tree nodes to cache in memory
const DefaultCacheSize = 10000

// DefaultHistorySize is the number of old versions we keep on disk
const DefaultHistorySize = 20

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree       *iavl.MutableTree
	numHistory int64
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with disk backing
func NewCommitStore(path, name string) CommitStore {
	db := dbm.NewDB(name, dbm.GoLevelDBBackend, path)
	tree := iavl.NewMutableTree(db, DefaultCacheSize)
	return CommitStore{
		tree:       tree,
		numHistory: DefaultHistorySize,
	}
}

// NewCommitStoreFromTree accepts a preloaded MutableTree and wraps it
// Mainly designed for test code... or devs who want full control
func NewCommitStoreFromTree(tree *iavl.MutableTree) CommitStore {
	return CommitStore{
		tree:       tree,
		numHistory: DefaultHistorySize,
	}
}

// MockCommitStore returns a store with memory backing for tests
func MockCommitStore() CommitStore {
	tree := iavl.NewMutableTree(dbm.NewMemDB(), DefaultCacheSize)
	return CommitStore{
		tree:       tree,
		numHistory: DefaultHistorySize,
	}
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist. Panics on nil key.
func (s CommitStore) Get(key []byte) []byte {
	version := s.tree.Version()
	_, value := s.tree.GetVersioned(key, version)
	return value
}

// Commit the next version to disk, and returns info
func (s CommitStore) Commit() store.CommitID {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		panic(err)
	}

	// release hold on old version
	if s.numHistory > 0 && s.numHistory < version {
		release := version - s.numHistory
		if s.tree.VersionExists(release) {
			if err := s.tree.DeleteVersion(release); err != nil {
				panic(err)
			}
		}
	}

	return store.CommitID{
		Version: version,
		Hash:    hash,
	}
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return err
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() store.CommitID {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}
}

// Adapter returns the working tree as a CacheableKVStore, so it can
// be the basis of the various caching/batch layers
func (s CommitStore) Adapter() store.CacheableKVStore {
	return store.BTreeCacheable{KVStore: adapter{tree: s.tree}}
}

// CacheWrap gives us a savepoint to perform actions
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	return s.Adapter().CacheWrap()
}

// adapter converts the working (uncommitted) state of the
// iavl tree into a KVStore
type adapter struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = adapter{}

// Get returns nil iff key doesn't exist. Panics on nil key.
func (a adapter) Get(key []byte) []byte {
	_, value := a.tree.Get(key)
	return value
}

// Has checks if a key exists. Panics on nil key.
func (a adapter) Has(key []byte) bool {
	return a.tree.Has(key)
}

// Set adds a new value to the working tree
func (a adapter) Set(key, value []byte) {
	a.tree.Set(key, value)
}

// Delete removes from the working tree
func (a adapter) Delete(key []byte) {
	a.tree.Remove(key)
}

// NewBatch returns a batch that can write multiple ops atomically
func (a adapter) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(a)
}

// Iterator over a domain of keys in ascending order. End is exclusive.
// Start must be less than end, or the Iterator is invalid.
// CONTRACT: No writes may happen within a domain while an iterator exists over it.
func (a adapter) Iterator(start, end []byte) store.Iterator {
	iter := newLazyIterator()
	go func() {
		a.tree.IterateRange(start, end, true, iter.add)
		iter.finish()
	}()
	iter.prime()
	return iter
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
// Start must be less than end, or the Iterator is invalid.
// CONTRACT: No writes may happen within a domain while an iterator exists over it.
func (a adapter) ReverseIterator(start, end []byte) store.Iterator {
	iter := newLazyIterator()
	go func() {
		a.tree.IterateRange(start, end, false, iter.add)
		iter.finish()
	}()
	iter.prime()
	return iter
}
