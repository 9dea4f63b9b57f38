package store

import (
	"github.com/iov-one/remit"
)

// Type aliases for the store interfaces defined in the root package,
// so this package and its consumers get shorter names everywhere.
type (
	ReadOnlyKVStore  = remit.ReadOnlyKVStore
	SetDeleter       = remit.SetDeleter
	KVStore          = remit.KVStore
	Batch            = remit.Batch
	Iterator         = remit.Iterator
	CacheableKVStore = remit.CacheableKVStore
	KVCacheWrap      = remit.KVCacheWrap
	CommitKVStore    = remit.CommitKVStore
	CommitID         = remit.CommitID
	Model            = remit.Model
)

// Pair constructs a Model from a key-value pair.
func Pair(key, value []byte) Model {
	return remit.Pair(key, value)
}
