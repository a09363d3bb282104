package redisbalance_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/investor_ledger/internal/cache/redisbalance"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T, ttl time.Duration) (*redisbalance.Cache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisbalance.New(client, ttl), srv
}

func TestCache_SetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	cache, _ := newCache(t, time.Minute)

	_, ok := cache.Get(ctx, "inv_1")
	assert.False(t, ok)

	want := domain.Balance{
		CreditTotal: decimal.NewFromInt(6000),
		DebitTotal:  decimal.NewFromInt(2000),
		NetBalance:  decimal.NewFromInt(4000),
	}
	require.NoError(t, cache.Set(ctx, "inv_1", want, 3))

	got, ok := cache.Get(ctx, "inv_1")
	require.True(t, ok)
	assert.True(t, got.CreditTotal.Equal(want.CreditTotal))
	assert.True(t, got.DebitTotal.Equal(want.DebitTotal))
	assert.True(t, got.NetBalance.Equal(want.NetBalance))

	require.NoError(t, cache.Invalidate(ctx, "inv_1"))
	_, ok = cache.Get(ctx, "inv_1")
	assert.False(t, ok)
}

func TestCache_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	cache, srv := newCache(t, time.Minute)

	require.NoError(t, cache.Set(ctx, "inv_1", domain.ZeroBalance(), 0))
	srv.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, "inv_1")
	assert.False(t, ok)
}

func TestCache_MalformedEntryIsAMiss(t *testing.T) {
	ctx := context.Background()
	cache, srv := newCache(t, time.Minute)

	require.NoError(t, srv.Set("ledger:balance:inv_1", "{not json"))

	_, ok := cache.Get(ctx, "inv_1")
	assert.False(t, ok)
	assert.False(t, srv.Exists("ledger:balance:inv_1"))
}

func TestCache_UnavailableServerIsAMiss(t *testing.T) {
	ctx := context.Background()
	cache, srv := newCache(t, time.Minute)
	srv.Close()

	_, ok := cache.Get(ctx, "inv_1")
	assert.False(t, ok)
	assert.Error(t, cache.Set(ctx, "inv_1", domain.ZeroBalance(), 0))
}

func balanceOf(net int64) domain.Balance {
	return domain.Balance{
		CreditTotal: decimal.NewFromInt(net),
		DebitTotal:  decimal.Zero,
		NetBalance:  decimal.NewFromInt(net),
	}
}

func TestCache_OlderSequenceDoesNotReplaceNewer(t *testing.T) {
	ctx := context.Background()
	cache, _ := newCache(t, time.Minute)

	// A debit (sequence 2) lands first, then a slower reader writes what it saw at sequence 1.
	require.NoError(t, cache.Set(ctx, "inv_1", balanceOf(2000), 2))
	require.NoError(t, cache.Set(ctx, "inv_1", balanceOf(5000), 1))

	got, ok := cache.Get(ctx, "inv_1")
	require.True(t, ok)
	assert.True(t, got.NetBalance.Equal(decimal.NewFromInt(2000)), got.NetBalance.String())
}

func TestCache_SameOrNewerSequenceReplaces(t *testing.T) {
	ctx := context.Background()
	cache, srv := newCache(t, time.Minute)

	require.NoError(t, cache.Set(ctx, "inv_1", balanceOf(5000), 1))
	require.NoError(t, cache.Set(ctx, "inv_1", balanceOf(5000), 1))
	require.NoError(t, cache.Set(ctx, "inv_1", balanceOf(2000), 2))

	got, ok := cache.Get(ctx, "inv_1")
	require.True(t, ok)
	assert.True(t, got.NetBalance.Equal(decimal.NewFromInt(2000)))
	assert.True(t, srv.TTL("ledger:balance:inv_1") > 0)
}

func TestCache_MalformedEntryIsReplaced(t *testing.T) {
	ctx := context.Background()
	cache, srv := newCache(t, 0)

	require.NoError(t, srv.Set("ledger:balance:inv_1", "{not json"))
	require.NoError(t, cache.Set(ctx, "inv_1", balanceOf(700), 1))

	got, ok := cache.Get(ctx, "inv_1")
	require.True(t, ok)
	assert.True(t, got.NetBalance.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, time.Duration(0), srv.TTL("ledger:balance:inv_1"))
}
