package redis_test

import (
	"context"
	"testing"
	"time"

	"multipay-aggregator/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestReplayCache_SetGet(t *testing.T) {
	_, client := newTestRedis(t)
	cache := redis.NewReplayCache(client)
	ctx := context.Background()

	value := []byte(`{"fingerprint":"fp-abc","response":{"ok":true}}`)
	require.NoError(t, cache.Set(ctx, "ppob_payment:req-1", value, time.Hour))

	got, err := cache.Get(ctx, "ppob_payment:req-1")
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestReplayCache_MissReturnsNil(t *testing.T) {
	_, client := newTestRedis(t)
	cache := redis.NewReplayCache(client)

	got, err := cache.Get(context.Background(), "ppob_payment:ghost")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestReplayCache_TTLExpiry(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := redis.NewReplayCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "bank_transfer:req-1", []byte(`{}`), time.Minute))

	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, "bank_transfer:req-1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogCache_RoundTripAndInvalidate(t *testing.T) {
	_, client := newTestRedis(t)
	cache := redis.NewCatalogCache(client)
	ctx := context.Background()

	value := []byte(`[{"code":"BCA","transfer_fee":6500}]`)
	require.NoError(t, cache.Set(ctx, "catalog:banks", value, 15*time.Minute))

	got, err := cache.Get(ctx, "catalog:banks")
	require.NoError(t, err)
	assert.Equal(t, value, got)

	require.NoError(t, cache.Invalidate(ctx, "catalog:banks"))

	got, err = cache.Get(ctx, "catalog:banks")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRateLimitStore_Allow(t *testing.T) {
	_, client := newTestRedis(t)
	store := redis.NewRateLimitStore(client)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		result, err := store.Allow(ctx, "user:7:transfers", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should be allowed", i)
		assert.Equal(t, int64(3), result.Limit)
		assert.Equal(t, 3-i, result.Remaining)
	}

	// 4th request in the same window is blocked.
	result, err := store.Allow(ctx, "user:7:transfers", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, int64(0), result.Remaining)

	// Other keys are unaffected.
	other, err := store.Allow(ctx, "user:8:transfers", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}
