package emotion

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lingbai-i/YueLi/internal/domain"
	"github.com/lingbai-i/YueLi/internal/platform/keylock"
)

type conversationState struct {
	vector    domain.EmotionVector
	lastTouch time.Time
}

// MemoryStore keeps all conversation state in process memory. Suitable for
// single-instance deployments; state does not survive a restart.
type MemoryStore struct {
	clock clockwork.Clock
	locks *keylock.KeyedMutex

	mu     sync.RWMutex
	states map[string]*conversationState
}

func NewMemoryStore(clock clockwork.Clock) *MemoryStore {
	return &MemoryStore{
		clock:  clock,
		locks:  keylock.New(),
		states: make(map[string]*conversationState),
	}
}

func (s *MemoryStore) Get(_ context.Context, conversationID string) (domain.EmotionVector, error) {
	s.locks.Lock(conversationID)
	defer s.locks.Unlock(conversationID)

	state := s.touch(conversationID)
	return state.vector, nil
}

func (s *MemoryStore) Update(_ context.Context, conversationID string, delta domain.EmotionDelta) error {
	s.locks.Lock(conversationID)
	defer s.locks.Unlock(conversationID)

	state := s.touch(conversationID)
	state.vector = Applied(state.vector, delta)
	return nil
}

// touch fetches or creates the entry, applies decay for the elapsed time and
// refreshes the last-touch timestamp. Callers must hold the conversation lock.
func (s *MemoryStore) touch(conversationID string) *conversationState {
	now := s.clock.Now()

	s.mu.Lock()
	state, ok := s.states[conversationID]
	if !ok {
		state = &conversationState{vector: domain.NeutralVector(), lastTouch: now}
		s.states[conversationID] = state
		s.mu.Unlock()
		return state
	}
	s.mu.Unlock()

	state.vector = Decayed(state.vector, now.Sub(state.lastTouch))
	state.lastTouch = now
	return state
}

func (s *MemoryStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states), nil
}

// PruneIdle drops conversations untouched for longer than olderThan. The
// origin kept every conversation forever; pruning is opt-in and off unless
// the caller wires a ticker to it.
func (s *MemoryStore) PruneIdle(_ context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, nil
	}
	now := s.clock.Now()

	// The scan collects IDs only. lastTouch is guarded by the conversation
	// lock, not s.mu, so the timestamp check has to wait for the second
	// phase where that lock is held.
	s.mu.RLock()
	ids := make([]string, 0, len(s.states))
	for id := range s.states {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	pruned := 0
	for _, id := range ids {
		s.locks.Lock(id)
		s.mu.Lock()
		if state, ok := s.states[id]; ok && now.Sub(state.lastTouch) > olderThan {
			delete(s.states, id)
			pruned++
		}
		s.mu.Unlock()
		s.locks.Unlock(id)
	}
	return pruned, nil
}
