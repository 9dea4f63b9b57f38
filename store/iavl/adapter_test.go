package iavl

import (
	"crypto/rand"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/remit/store"
)

type Model = store.Model
type Op = store.Op

// makeBase returns the base layer
//
// If you want to test a different kvstore implementation
// you can copy most of these tests and change makeBase.
// Once that passes, customize and extend as you wish
func makeBase() (store.CacheableKVStore, func()) {
	commit, cleanup := makeCommitStore()
	return commit.Adapter(), cleanup
}

func makeCommitStore() (CommitStore, func()) {
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	if err != nil {
		panic(err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }
	commit := NewCommitStore(tmpDir, "base")
	return commit, cleanup
}

func TestCacheGetSet(t *testing.T) {
	store.NewTestSuite(makeBase).GetSet(t)
}

func TestCacheConflicts(t *testing.T) {
	store.NewTestSuite(makeBase).CacheConflicts(t)
}

func TestFuzzCacheIterator(t *testing.T) {
	store.NewTestSuite(makeBase).FuzzIterator(t)
}

func TestConflictCacheIterator(t *testing.T) {
	store.NewTestSuite(makeBase).IteratorWithConflicts(t)
}

// TestCommitOverwrite checks that we commit properly
// and can add/overwrite/query in the next adapter
func TestCommitOverwrite(t *testing.T) {
	// make 10 keys and 20 values....
	ks := randKeys(10, 16)
	vs := randKeys(20, 40)

	cases := map[string]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []Model // Key is what we query, Value is what we expect
		childQueries  []Model // Key is what we query, Value is what we expect
	}{
		"overwrite one, delete another, add a third": {
			parentOps:     []Op{store.SetOp(ks[1], vs[1]), store.SetOp(ks[2], vs[2])},
			childOps:      []Op{store.SetOp(ks[1], vs[11]), store.SetOp(ks[3], vs[7]), store.DelOp(ks[2])},
			parentQueries: []Model{store.Pair(ks[1], vs[1]), store.Pair(ks[2], vs[2]), store.Pair(ks[3], nil)},
			childQueries:  []Model{store.Pair(ks[1], vs[11]), store.Pair(ks[2], nil), store.Pair(ks[3], vs[7])},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			commit, cleanup := makeCommitStore()
			defer cleanup()
			// only one version to trigger a cleanup
			commit.numHistory = 1

			id := commit.LatestVersion()
			assert.Equal(t, int64(0), id.Version)
			assert.Equal(t, 0, len(id.Hash))

			parent := commit.CacheWrap()
			for _, op := range tc.parentOps {
				op.Apply(parent)
			}
			// write data to backing store
			parent.Write()
			id = commit.Commit()
			assert.Equal(t, int64(1), id.Version)
			if len(id.Hash) == 0 {
				t.Fatal("hash is empty")
			}

			// child also comes from commit
			child := commit.CacheWrap()
			for _, op := range tc.childOps {
				op.Apply(child)
			}

			// and a side-cache wrap to see they are in parallel
			side := commit.CacheWrap()

			// now check that side gets unmodified parent state
			for _, q := range tc.parentQueries {
				assertGetHas(t, side, q.Key, q.Value, q.Value != nil)
			}

			// the child shows changes
			for _, q := range tc.childQueries {
				assertGetHas(t, child, q.Key, q.Value, q.Value != nil)
			}

			// write child to parent and make sure it also shows proper data
			child.Write()
			for _, q := range tc.childQueries {
				assertGetHas(t, side, q.Key, q.Value, q.Value != nil)
			}
			id = commit.Commit()
			assert.Equal(t, int64(2), id.Version)

			// with numHistory of one the first version was released
			assert.False(t, commit.tree.VersionExists(1))
		})
	}
}

// TestLoadLatestVersion makes sure Get only exposes committed state
// and the latest version can be loaded on a fresh store.
func TestLoadLatestVersion(t *testing.T) {
	commit := MockCommitStore()

	assert.Nil(t, commit.LoadLatestVersion())
	assert.Equal(t, int64(0), commit.LatestVersion().Version)

	k, v := []byte("power"), []byte("outage")
	cache := commit.CacheWrap()
	cache.Set(k, v)
	cache.Write()

	// not visible to the committed state until Commit
	assert.Nil(t, commit.Get(k))

	id := commit.Commit()
	assert.Equal(t, int64(1), id.Version)
	assert.Equal(t, v, commit.Get(k))
	assert.Equal(t, id, commit.LatestVersion())
}

func assertGetHas(t testing.TB, kv store.ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	assert.Equal(t, val, kv.Get(key))
	assert.Equal(t, has, kv.Has(key))
}

func randBytes(length int) []byte {
	res := make([]byte, length)
	rand.Read(res)
	return res
}

// randKeys returns a slice of count keys, all of a given size
func randKeys(count, size int) [][]byte {
	res := make([][]byte, count)
	for i := 0; i < count; i++ {
		res[i] = randBytes(size)
	}
	return res
}
