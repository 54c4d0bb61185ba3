package domain

import (
	"context"
	"time"
)

// EmotionKind enumerates the tracked emotion components. Delta maps are keyed
// by kind so callers cannot address anything outside the six known components.
type EmotionKind string

const (
	EmotionJoy      EmotionKind = "joy"
	EmotionAnger    EmotionKind = "anger"
	EmotionSorrow   EmotionKind = "sorrow"
	EmotionFear     EmotionKind = "fear"
	EmotionSurprise EmotionKind = "surprise"
	EmotionNeutral  EmotionKind = "neutral"
)

// EmotionKinds lists all tracked kinds in a fixed order.
var EmotionKinds = []EmotionKind{
	EmotionJoy,
	EmotionAnger,
	EmotionSorrow,
	EmotionFear,
	EmotionSurprise,
	EmotionNeutral,
}

// ParseEmotionKind maps a raw name to a tracked kind. Unknown names return
// false; the store drops such delta entries instead of erroring.
func ParseEmotionKind(name string) (EmotionKind, bool) {
	switch EmotionKind(name) {
	case EmotionJoy, EmotionAnger, EmotionSorrow, EmotionFear, EmotionSurprise, EmotionNeutral:
		return EmotionKind(name), true
	}
	return "", false
}

// EmotionVector is a snapshot of a conversation's mood. Components are
// independent, each in [0,1]. Neutral is a baseline that relaxes back toward
// 1 as the others decay; it is not a complement of the rest.
type EmotionVector struct {
	Joy      float64 `json:"joy"`
	Anger    float64 `json:"anger"`
	Sorrow   float64 `json:"sorrow"`
	Fear     float64 `json:"fear"`
	Surprise float64 `json:"surprise"`
	Neutral  float64 `json:"neutral"`
}

// NeutralVector is the state of a conversation that has never been touched.
func NeutralVector() EmotionVector {
	return EmotionVector{Neutral: 1}
}

// Component returns the value of one tracked kind.
func (v EmotionVector) Component(kind EmotionKind) float64 {
	switch kind {
	case EmotionJoy:
		return v.Joy
	case EmotionAnger:
		return v.Anger
	case EmotionSorrow:
		return v.Sorrow
	case EmotionFear:
		return v.Fear
	case EmotionSurprise:
		return v.Surprise
	case EmotionNeutral:
		return v.Neutral
	}
	return 0
}

// EmotionDelta is a signed adjustment applied component-wise by a store.
type EmotionDelta map[EmotionKind]float64

// EmotionStore owns all per-conversation emotion state. All mutation goes
// through Update so clamping and last-touch bookkeeping are never bypassed.
// Both operations apply lazy time decay before anything else.
type EmotionStore interface {
	// Get returns the conversation's current vector, creating an all-neutral
	// entry on first access.
	Get(ctx context.Context, conversationID string) (EmotionVector, error)

	// Update adds delta component-wise, clamps every component to [0,1] and
	// refreshes the last-touch timestamp. Unknown delta kinds are dropped.
	Update(ctx context.Context, conversationID string, delta EmotionDelta) error

	// Len reports the number of tracked conversations.
	Len(ctx context.Context) (int, error)

	// PruneIdle drops conversations untouched for longer than olderThan and
	// returns how many were removed. A non-positive olderThan is a no-op.
	PruneIdle(ctx context.Context, olderThan time.Duration) (int, error)
}
