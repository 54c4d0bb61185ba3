package emotion

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingbai-i/YueLi/internal/domain"
)

func newRedisStore(t *testing.T) (*RedisStore, *clockwork.FakeClock) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	clock := clockwork.NewFakeClock()
	return NewRedisStore(client, clock), clock
}

func TestRedisStore_LazyCreation(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	v, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.NeutralVector(), v)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRedisStore_UpdateAndDecayMatchMemoryStore(t *testing.T) {
	redisStore, redisClock := newRedisStore(t)
	memStore, memClock := newMemoryStore()
	ctx := context.Background()

	delta := domain.EmotionDelta{domain.EmotionJoy: 0.8, domain.EmotionFear: 0.3}
	require.NoError(t, redisStore.Update(ctx, "s1", delta))
	require.NoError(t, memStore.Update(ctx, "s1", delta))

	redisClock.Advance(HalfLife)
	memClock.Advance(HalfLife)

	fromRedis, err := redisStore.Get(ctx, "s1")
	require.NoError(t, err)
	fromMem, err := memStore.Get(ctx, "s1")
	require.NoError(t, err)

	assert.InDelta(t, fromMem.Joy, fromRedis.Joy, 1e-6)
	assert.InDelta(t, fromMem.Fear, fromRedis.Fear, 1e-6)
	assert.InDelta(t, fromMem.Neutral, fromRedis.Neutral, 1e-6)
}

func TestRedisStore_DropsUnknownDeltaKinds(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Update(ctx, "s1", domain.EmotionDelta{
		domain.EmotionKind("love"): 0.9,
		domain.EmotionJoy:          0.2,
	}))

	v, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.InDelta(t, 0.2, v.Joy, 1e-9)
}

func TestRedisStore_SurvivesCorruptFields(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client, clockwork.NewFakeClock())
	ctx := context.Background()

	mr.HSet(redisKeyPrefix+"s1", "joy", "not-a-float", "last_touch", "0")

	v, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v.Joy)
}

func TestRedisStore_PruneIdle(t *testing.T) {
	store, clock := newRedisStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "old")
	require.NoError(t, err)
	clock.Advance(2 * time.Hour)
	_, err = store.Get(ctx, "fresh")
	require.NoError(t, err)

	pruned, err := store.PruneIdle(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
