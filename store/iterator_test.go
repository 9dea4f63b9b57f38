package store

import (
	"testing"
)

func TestCacheIteratorCloseRaceCondition(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("A"))
	cache := db.CacheWrap()

	it := cache.Iterator([]byte("a"), []byte("z"))
	// Close must be a synchronous operation.
	it.Close()
	db.Delete([]byte("a"))
}

func TestCacheReverseIteratorCloseRaceCondition(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("A"))
	cache := db.CacheWrap()

	it := cache.ReverseIterator([]byte("a"), []byte("z"))
	// Close must be a synchronous operation.
	it.Close()
	db.Delete([]byte("a"))
}
