// Package app wires the decision engine, emotion store, and motion
// controller into the operations the server and transport call.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lingbai-i/YueLi/internal/domain"
	"github.com/lingbai-i/YueLi/internal/metrics"
)

// Mover extends the motion contract with name resolution, so requested
// names in any accepted form map onto hotkey table entries.
type Mover interface {
	domain.MotionController
	ResolveKey(name string) (string, bool)
}

type Options struct {
	// DefaultConversation scopes decisions made for brain replies,
	// which carry no conversation of their own.
	DefaultConversation string

	// PruneTTL drops conversations idle longer than this. Zero
	// disables the sweep.
	PruneTTL      time.Duration
	PruneInterval time.Duration
}

// Service coordinates one decision-and-motion round trip.
type Service struct {
	engine domain.DecisionEngine
	store  domain.EmotionStore
	motion Mover
	clock  clockwork.Clock
	logger *slog.Logger
	opts   Options
}

func NewService(engine domain.DecisionEngine, store domain.EmotionStore, motion Mover, clock clockwork.Clock, logger *slog.Logger, opts Options) *Service {
	if opts.DefaultConversation == "" {
		opts.DefaultConversation = "live_room"
	}
	return &Service{
		engine: engine,
		store:  store,
		motion: motion,
		clock:  clock,
		logger: logger.With("component", "app"),
		opts:   opts,
	}
}

// PerformMotion arbitrates an action for the utterance and fires the
// winning trigger. The decision is returned even when no motion fires,
// so callers can inspect the reasoning.
func (s *Service) PerformMotion(ctx context.Context, conversationID, requested, text string) (domain.Decision, error) {
	decision, err := s.engine.Decide(ctx, conversationID, requested, text)
	if err != nil {
		return domain.Decision{}, err
	}

	if decision.Action == "" {
		s.logger.Info("no action eligible",
			"conversation_id", conversationID, "requested", requested)
		return decision, nil
	}

	if requested != "" && decision.Action != requested {
		metrics.MotionSubstitutionsTotal.Inc()
		s.logger.Info("requested action overridden",
			"conversation_id", conversationID,
			"requested", requested, "selected", decision.Action,
			"reason", decision.Reason)
	}

	key, ok := s.motion.ResolveKey(decision.Action)
	if !ok {
		s.logger.Warn("selected action has no hotkey",
			"conversation_id", conversationID, "action", decision.Action)
		return decision, nil
	}

	if !s.motion.Trigger(key) {
		s.logger.Warn("motion trigger failed",
			"conversation_id", conversationID, "action", decision.Action, "key", key)
	}

	return decision, nil
}

// HandleReply reacts to text pushed back by the reasoning service:
// the reply is treated as an utterance in the default conversation and
// the arbitrated expression fires.
func (s *Service) HandleReply(ctx context.Context, text string) {
	if text == "" {
		return
	}

	decision, err := s.PerformMotion(ctx, s.opts.DefaultConversation, "", text)
	if err != nil {
		s.logger.Error("reply handling failed", "error", err)
		return
	}

	s.logger.Info("reply handled",
		"action", decision.Action, "reason", decision.Reason)
}

// RunPruner periodically drops idle conversations and refreshes the
// tracked-conversations gauge. Returns immediately when pruning is
// disabled.
func (s *Service) RunPruner(ctx context.Context) error {
	if s.opts.PruneTTL <= 0 {
		s.logger.Info("idle pruning disabled")
		return nil
	}

	s.logger.Info("idle pruning enabled",
		"ttl", s.opts.PruneTTL, "interval", s.opts.PruneInterval)

	for {
		select {
		case <-s.clock.After(s.opts.PruneInterval):
		case <-ctx.Done():
			return ctx.Err()
		}

		pruned, err := s.store.PruneIdle(ctx, s.opts.PruneTTL)
		if err != nil {
			s.logger.Error("prune sweep failed", "error", err)
			continue
		}
		if pruned > 0 {
			metrics.PrunedConversationsTotal.Add(float64(pruned))
			s.logger.Info("pruned idle conversations", "count", pruned)
		}

		if n, err := s.store.Len(ctx); err == nil {
			metrics.TrackedConversations.Set(float64(n))
		}
	}
}
