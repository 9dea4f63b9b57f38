package orm

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/remit/store"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	cases := []struct {
		bucket     string
		name       string
		init       int64
		increments int64
	}{
		0: {"aaa", "seq", 0, 22},
		1: {"aaa", "other", 0, 11},
		2: {"aaa", "seq", 22, 18},
		3: {"bbb", "seq", 0, 77},
		4: {"aaa", "other", 11, 248},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.name)
			_, orig := s.Latest(db)

			var val int64
			for i := int64(0); i < tc.increments; i++ {
				val = s.NextInt(db)
			}
			// expect the final value to be this
			expect := tc.init + tc.increments
			assert.Equal(t, expect, val)

			// make sure final value is bigger than original value
			// if we use the raw bytes to index stuff
			_, last := s.Latest(db)
			assert.Equal(t, 1, bytes.Compare(last, orig))
		})
	}
}

func TestSequenceLatest(t *testing.T) {
	db := store.MemStore()

	s := NewSequence("main", SeqID)

	// an untouched sequence reports zero state
	latest, raw := s.Latest(db)
	assert.Equal(t, int64(0), latest)
	assert.Nil(t, raw)

	bz := s.NextVal(db)
	assert.Equal(t, encodeSequence(1), bz)

	// Latest must report what NextVal returned and must
	// not advance the state itself
	for i := 0; i < 3; i++ {
		latest, raw = s.Latest(db)
		assert.Equal(t, int64(1), latest)
		assert.Equal(t, bz, raw)
	}

	assert.Equal(t, int64(2), s.NextInt(db))
}
