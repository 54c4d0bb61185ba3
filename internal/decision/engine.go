package decision

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/lingbai-i/YueLi/internal/domain"
	"github.com/lingbai-i/YueLi/internal/metrics"
	"github.com/lingbai-i/YueLi/internal/platform/keylock"
	"github.com/lingbai-i/YueLi/internal/sentiment"
)

// Self-feedback gain: half of the utterance's polarity sum feeds back into
// the matching emotion component.
const feedbackGain = 0.5

// ReasonNoCandidates is the reported reason when masking removed every
// catalog entry. A normal outcome, never an error.
const ReasonNoCandidates = "no eligible candidates"

// Engine arbitrates one expressive action per Decide call. It is stateless
// across calls except through its effect on the emotion store. Decisions for
// the same conversation serialize on a per-key lock; different conversations
// run fully in parallel.
type Engine struct {
	store         domain.EmotionStore
	relationships domain.RelationshipProvider
	actions       []domain.ActionDescriptor
	locks         *keylock.KeyedMutex
}

func NewEngine(store domain.EmotionStore, relationships domain.RelationshipProvider, actions []domain.ActionDescriptor) *Engine {
	return &Engine{
		store:         store,
		relationships: relationships,
		actions:       actions,
		locks:         keylock.New(),
	}
}

type scoredAction struct {
	action domain.ActionDescriptor
	score  float64
	trace  []string
}

// Decide evaluates text for the conversation and picks the best catalog
// action. requested participates as an ordinary catalog member with no
// priority; the engine reports its pick and leaves substitution handling to
// the caller.
func (e *Engine) Decide(ctx context.Context, conversationID, requested, text string) (domain.Decision, error) {
	timer := metrics.NewDecisionTimer()
	defer timer.ObserveDuration()

	e.locks.Lock(conversationID)
	defer e.locks.Unlock(conversationID)

	log := slog.With(
		"conversation_id", conversationID,
		"decision_id", uuid.NewString(),
	)

	vector, err := e.store.Get(ctx, conversationID)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("fetch emotion state: %w", err)
	}

	signal := sentiment.Analyze(text)

	// Self-feedback: the system's own utterance nudges its mood before the
	// same decision reads the vector. The post-feedback snapshot is
	// re-fetched explicitly so the data flow is visible, not an aliasing
	// side effect.
	if delta := feedbackDelta(signal); len(delta) > 0 {
		if err := e.store.Update(ctx, conversationID, delta); err != nil {
			return domain.Decision{}, fmt.Errorf("apply self-feedback: %w", err)
		}
		metrics.SelfFeedbackTotal.Inc()
		vector, err = e.store.Get(ctx, conversationID)
		if err != nil {
			return domain.Decision{}, fmt.Errorf("refetch emotion state: %w", err)
		}
		log.Debug("self-feedback applied", "delta", delta)
	}

	candidates := EligibleCandidates(e.actions, vector, signal)
	metrics.MaskedCandidatesTotal.Add(float64(len(e.actions) - len(candidates)))
	if len(candidates) == 0 {
		metrics.DecisionsTotal.WithLabelValues("empty").Inc()
		log.Debug("all candidates masked", "positive", signal.Positive, "negative", signal.Negative)
		return domain.Decision{Reason: ReasonNoCandidates}, nil
	}

	intimacy := e.relationships.Closeness(ctx, conversationID)

	scored := make([]scoredAction, 0, len(candidates))
	for _, action := range candidates {
		score, trace := Score(action, vector, intimacy, signal)
		scored = append(scored, scoredAction{action: action, score: score, trace: trace})
	}
	// Stable sort: equal scores keep catalog enumeration order, so the
	// first-defined action wins ties deterministically.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	best := scored[0]
	decision := domain.Decision{
		Action: best.action.Key,
		Score:  best.score,
		Trace:  best.trace,
		Reason: fmt.Sprintf("Score: %.2f [%s]", best.score, strings.Join(best.trace, ", ")),
	}

	metrics.DecisionsTotal.WithLabelValues("selected").Inc()
	log.Debug("action selected",
		"action", decision.Action,
		"score", decision.Score,
		"requested", requested,
	)
	return decision, nil
}

// feedbackDelta maps utterance polarity onto emotion adjustments: positive
// speech lifts joy, negative speech stokes anger.
func feedbackDelta(signal domain.SentimentSignal) domain.EmotionDelta {
	if signal.Intensity <= 0 {
		return nil
	}
	delta := domain.EmotionDelta{}
	if signal.Positive > 0 {
		delta[domain.EmotionJoy] = signal.Positive * feedbackGain
	}
	if signal.Negative > 0 {
		delta[domain.EmotionAnger] = signal.Negative * feedbackGain
	}
	return delta
}
