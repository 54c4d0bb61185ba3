// Package relationship supplies the 0-100 closeness score that gates
// intimacy-restricted actions.
package relationship

import (
	"context"
	"log/slog"
	"strconv"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultCloseness is "ordinary friend". Used until a conversation has a real
// tracked relationship.
const DefaultCloseness = 50

// Static returns the same closeness for every conversation.
type Static struct {
	Value int
}

func (s Static) Closeness(context.Context, string) int {
	return s.Value
}

const redisKeyPrefix = "yueli:relationship:"

// RedisProvider reads per-conversation closeness from Redis, falling back to
// a default for conversations without a tracked relationship. Writes happen
// elsewhere (relationship tracking is a separate concern); this provider is
// read-only by design.
type RedisProvider struct {
	rdb      *goredis.Client
	fallback int
}

func NewRedisProvider(rdb *goredis.Client, fallback int) *RedisProvider {
	return &RedisProvider{rdb: rdb, fallback: fallback}
}

func (p *RedisProvider) Closeness(ctx context.Context, conversationID string) int {
	raw, err := p.rdb.Get(ctx, redisKeyPrefix+conversationID).Result()
	if err != nil {
		if err != goredis.Nil {
			slog.Warn("closeness lookup failed", "conversation_id", conversationID, "error", err)
		}
		return p.fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return p.fallback
	}
	return clampCloseness(value)
}

func clampCloseness(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
