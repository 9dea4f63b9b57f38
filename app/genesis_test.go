package app

import (
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/store"
	"github.com/stretchr/testify/assert"
)

const dummyKey = "dummy"

type dummyInit struct{}

func (dummyInit) FromGenesis(opts remit.Options, params remit.GenesisParams, kv remit.KVStore) error {
	var value string
	if err := opts.ReadOptions(dummyKey, &value); err != nil {
		return err
	}
	kv.Set([]byte(dummyKey), []byte(value))
	return nil
}

type countInit struct {
	called int
}

func (c *countInit) FromGenesis(remit.Options, remit.GenesisParams, remit.KVStore) error {
	c.called++
	return nil
}

type failInit struct{}

func (failInit) FromGenesis(remit.Options, remit.GenesisParams, remit.KVStore) error {
	return errors.ErrHuman
}

func TestChainInitializers(t *testing.T) {
	db := store.MemStore()
	opts := remit.Options{dummyKey: []byte(`"secret"`)}

	c := new(countInit)
	init := ChainInitializers(nil, dummyInit{}, c)
	assert.NoError(t, init.FromGenesis(opts, remit.GenesisParams{}, db))
	assert.Equal(t, 1, c.called)
	assert.Equal(t, []byte("secret"), db.Get([]byte(dummyKey)))
}

func TestChainInitializersAbortOnFailure(t *testing.T) {
	db := store.MemStore()

	c := new(countInit)
	init := ChainInitializers(failInit{}, c)
	assert.Error(t, init.FromGenesis(remit.Options{}, remit.GenesisParams{}, db))
	assert.Equal(t, 0, c.called)
}
