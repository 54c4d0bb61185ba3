package relationship

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestStatic(t *testing.T) {
	p := Static{Value: 50}

	assert.Equal(t, 50, p.Closeness(context.Background(), "anyone"))
}

func newRedisProvider(t *testing.T) (*RedisProvider, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisProvider(client, DefaultCloseness), mr
}

func TestRedisProvider_TrackedConversation(t *testing.T) {
	p, mr := newRedisProvider(t)
	require := assert.New(t)

	mr.Set(redisKeyPrefix+"s1", "85")

	require.Equal(85, p.Closeness(context.Background(), "s1"))
}

func TestRedisProvider_FallbackForUnknown(t *testing.T) {
	p, _ := newRedisProvider(t)

	assert.Equal(t, DefaultCloseness, p.Closeness(context.Background(), "stranger"))
}

func TestRedisProvider_FallbackForGarbage(t *testing.T) {
	p, mr := newRedisProvider(t)

	mr.Set(redisKeyPrefix+"s1", "very close")

	assert.Equal(t, DefaultCloseness, p.Closeness(context.Background(), "s1"))
}

func TestRedisProvider_ClampsOutOfRange(t *testing.T) {
	p, mr := newRedisProvider(t)

	mr.Set(redisKeyPrefix+"low", "-20")
	mr.Set(redisKeyPrefix+"high", "150")

	assert.Equal(t, 0, p.Closeness(context.Background(), "low"))
	assert.Equal(t, 100, p.Closeness(context.Background(), "high"))
}
