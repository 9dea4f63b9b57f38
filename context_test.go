package remit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContext(t *testing.T) {
	bg := context.Background()

	// try logger with default
	newLogger := log.NewTMLogger(os.Stdout)
	ctx := WithLogger(bg, newLogger)
	assert.Equal(t, DefaultLogger, GetLogger(bg))
	assert.Equal(t, newLogger, GetLogger(ctx))

	// test height - uninitialized
	val, ok := GetHeight(ctx)
	assert.Equal(t, int64(0), val)
	assert.False(t, ok)
	// set
	ctx = WithHeight(ctx, 7)
	val, ok = GetHeight(ctx)
	assert.Equal(t, int64(7), val)
	assert.True(t, ok)
	// no reset
	assert.Panics(t, func() { WithHeight(ctx, 9) })

	// changing the info, should modify the logger, but not the height
	ctx2 := WithLogInfo(ctx, "foo", "bar")
	assert.NotEqual(t, GetLogger(ctx), GetLogger(ctx2))
	val, _ = GetHeight(ctx)
	assert.Equal(t, int64(7), val)

	// chain id MUST be set exactly once
	assert.Panics(t, func() { GetChainID(ctx) })
	ctx2 = WithChainID(ctx, "my-chain")
	assert.Equal(t, "my-chain", GetChainID(ctx2))
	// don't try a second time
	assert.Panics(t, func() { WithChainID(ctx2, "my-chain") })

	// header is write once as well
	_, ok = GetHeader(ctx)
	assert.False(t, ok)
	ctx = WithHeader(ctx, abci.Header{Height: 14})
	header, ok := GetHeader(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(14), header.Height)
	assert.Panics(t, func() { WithHeader(ctx, abci.Header{Height: 15}) })
}

func TestBlockTime(t *testing.T) {
	bg := context.Background()

	if _, err := BlockTime(bg); err == nil {
		t.Fatal("expected an error when block time is not set")
	}

	now := time.Now()
	ctx := WithBlockTime(bg, now)
	got, err := BlockTime(ctx)
	if err != nil {
		t.Fatalf("cannot get block time: %s", err)
	}
	if want := now.UTC(); !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	ctx := WithBlockTime(context.Background(), now)

	future := AsUnixTime(now.Add(5 * time.Minute))
	if IsExpired(ctx, future) {
		t.Error("future is not expected to be expired")
	}

	past := AsUnixTime(now.Add(-5 * time.Minute))
	if !IsExpired(ctx, past) {
		t.Error("past is expected to be expired")
	}

	// expiration is inclusive of the current block time
	if !IsExpired(ctx, AsUnixTime(now)) {
		t.Error("block time is expected to be expired")
	}
}

func TestIsExpiredRequiresBlockTime(t *testing.T) {
	assert.Panics(t, func() {
		IsExpired(context.Background(), AsUnixTime(time.Now()))
	})
}

func TestChainID(t *testing.T) {
	cases := []struct {
		chainID string
		valid   bool
	}{
		{"", false},
		{"foo", false},
		{"special", true},
		{"wish-YOU-88", true},
		{"invalid;;chars", false},
		{"this-chain-id-is-way-too-long", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsValidChainID(tc.chainID), tc.chainID)
	}
}
