package app_test

import (
	"context"
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/app"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/store/iavl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

// writeHandler stores the message payload under a fixed key.
type writeHandler struct{}

func (writeHandler) Check(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	return &remit.CheckResult{}, nil
}

func (writeHandler) Deliver(ctx remit.Context, db remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	raw, err := msg.Marshal()
	if err != nil {
		return nil, err
	}
	db.Set([]byte("payload"), raw)
	return &remit.DeliverResult{Data: raw}, nil
}

func testDecoder(bz []byte) (remit.Tx, error) {
	if len(bz) == 0 {
		return nil, errors.Wrap(errors.ErrInput, "empty transaction")
	}
	return &remittest.Tx{Msg: &remittest.Msg{RoutePath: "test/write", Serialized: bz}}, nil
}

func TestBaseAppFlow(t *testing.T) {
	chainID := "test-net-22"

	router := app.NewRouter()
	router.Handle(&remittest.Msg{RoutePath: "test/write"}, writeHandler{})

	store := app.NewStoreApp("demo", iavl.MockCommitStore(), remit.NewQueryRouter(), context.Background())
	store = store.WithInit(app.ChainInitializers())
	baseApp := app.NewBaseApp(store, testDecoder, router, nil, false)

	baseApp.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(`{}`),
		ChainId:       chainID,
	})
	assert.Equal(t, chainID, baseApp.GetChainID())

	baseApp.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})

	cres := baseApp.CheckTx([]byte("hello"))
	require.Equal(t, uint32(0), cres.Code, cres.Log)
	dres := baseApp.DeliverTx([]byte("hello"))
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	assert.Equal(t, []byte("hello"), dres.Data)

	baseApp.EndBlock(abci.RequestEndBlock{})
	commit := baseApp.Commit()
	assert.NotEmpty(t, commit.Data)

	// state written during DeliverTx must be visible after the commit
	assert.Equal(t, []byte("hello"), baseApp.DeliverStore().Get([]byte("payload")))

	// a transaction that cannot be decoded must be rejected
	bad := baseApp.DeliverTx(nil)
	assert.NotEqual(t, uint32(0), bad.Code)
}

func TestJoinResults(t *testing.T) {
	models := []remit.Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
	}
	keys := app.ResultsFromKeys(models)
	values := app.ResultsFromValues(models)

	joined, err := app.JoinResults(keys, values)
	require.NoError(t, err)
	assert.Equal(t, models, joined)

	_, err = app.JoinResults(keys, &app.ResultSet{})
	assert.Error(t, err)
}
