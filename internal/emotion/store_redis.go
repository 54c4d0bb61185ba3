package emotion

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/lingbai-i/YueLi/internal/domain"
	"github.com/lingbai-i/YueLi/internal/platform/keylock"
)

const (
	redisKeyPrefix = "yueli:emotion:"
	fieldLastTouch = "last_touch"
)

// RedisStore keeps conversation state in a Redis hash per conversation, so
// mood survives process restarts. The read-decay-mutate-write sequence is
// serialized by a process-local keyed mutex; running multiple instances
// against the same Redis needs external coordination.
type RedisStore struct {
	rdb   *goredis.Client
	clock clockwork.Clock
	locks *keylock.KeyedMutex
}

func NewRedisStore(rdb *goredis.Client, clock clockwork.Clock) *RedisStore {
	return &RedisStore{
		rdb:   rdb,
		clock: clock,
		locks: keylock.New(),
	}
}

func (s *RedisStore) Get(ctx context.Context, conversationID string) (domain.EmotionVector, error) {
	s.locks.Lock(conversationID)
	defer s.locks.Unlock(conversationID)

	return s.touch(ctx, conversationID, nil)
}

func (s *RedisStore) Update(ctx context.Context, conversationID string, delta domain.EmotionDelta) error {
	s.locks.Lock(conversationID)
	defer s.locks.Unlock(conversationID)

	_, err := s.touch(ctx, conversationID, delta)
	return err
}

// touch loads the hash, applies decay for the elapsed time, optionally adds
// delta, and writes the result back with a fresh last-touch timestamp.
// Callers must hold the conversation lock.
func (s *RedisStore) touch(ctx context.Context, conversationID string, delta domain.EmotionDelta) (domain.EmotionVector, error) {
	key := redisKeyPrefix + conversationID
	now := s.clock.Now()

	fields, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return domain.EmotionVector{}, fmt.Errorf("load emotion state: %w", err)
	}

	vector := domain.NeutralVector()
	if len(fields) > 0 {
		vector = parseVector(fields)
		if ms, perr := strconv.ParseInt(fields[fieldLastTouch], 10, 64); perr == nil {
			vector = Decayed(vector, now.Sub(time.UnixMilli(ms)))
		}
	}

	if delta != nil {
		vector = Applied(vector, delta)
	}

	if err := s.rdb.HSet(ctx, key, encodeVector(vector, now)).Err(); err != nil {
		return domain.EmotionVector{}, fmt.Errorf("store emotion state: %w", err)
	}
	return vector, nil
}

func (s *RedisStore) Len(ctx context.Context) (int, error) {
	count := 0
	iter := s.rdb.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("scan emotion keys: %w", err)
	}
	return count, nil
}

func (s *RedisStore) PruneIdle(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, nil
	}
	now := s.clock.Now()

	var keys []string
	iter := s.rdb.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("scan emotion keys: %w", err)
	}

	pruned := 0
	for _, key := range keys {
		conversationID := strings.TrimPrefix(key, redisKeyPrefix)
		s.locks.Lock(conversationID)
		raw, err := s.rdb.HGet(ctx, key, fieldLastTouch).Result()
		if err == nil {
			if ms, perr := strconv.ParseInt(raw, 10, 64); perr == nil && now.Sub(time.UnixMilli(ms)) > olderThan {
				if s.rdb.Del(ctx, key).Err() == nil {
					pruned++
				}
			}
		}
		s.locks.Unlock(conversationID)
	}
	return pruned, nil
}

func parseVector(fields map[string]string) domain.EmotionVector {
	at := func(name string) float64 {
		f, err := strconv.ParseFloat(fields[name], 64)
		if err != nil {
			return 0 // graceful degradation for corrupt data
		}
		return f
	}
	return Clamped(domain.EmotionVector{
		Joy:      at("joy"),
		Anger:    at("anger"),
		Sorrow:   at("sorrow"),
		Fear:     at("fear"),
		Surprise: at("surprise"),
		Neutral:  at("neutral"),
	})
}

func encodeVector(v domain.EmotionVector, touched time.Time) map[string]any {
	f := func(val float64) string { return strconv.FormatFloat(val, 'f', -1, 64) }
	return map[string]any{
		"joy":          f(v.Joy),
		"anger":        f(v.Anger),
		"sorrow":       f(v.Sorrow),
		"fear":         f(v.Fear),
		"surprise":     f(v.Surprise),
		"neutral":      f(v.Neutral),
		fieldLastTouch: strconv.FormatInt(touched.UnixMilli(), 10),
	}
}
