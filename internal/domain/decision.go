package domain

import "context"

// Decision is the outcome of one arbitration call. Action is empty when
// masking removed every catalog entry; that is a reported result, not an
// error.
type Decision struct {
	// Action is the selected catalog key, or empty for no eligible candidate.
	Action string `json:"action"`

	// Score is the winning utility score. Zero when Action is empty.
	Score float64 `json:"score"`

	// Reason is the formatted justification, e.g.
	// "Score: 68.25 [EmoRes(+38.2), TextPosMatch]".
	Reason string `json:"reason"`

	// Trace holds the ordered reason fragments that make up Reason.
	Trace []string `json:"trace,omitempty"`
}

// DecisionEngine arbitrates one expressive action per call. It is stateless
// across calls except through its effect on the emotion store.
type DecisionEngine interface {
	// Decide evaluates text for the conversation and picks the best catalog
	// action. requested participates as an ordinary catalog member with no
	// priority; comparing the result against it is the caller's business.
	Decide(ctx context.Context, conversationID, requested, text string) (Decision, error)
}

// RelationshipProvider supplies the 0-100 closeness score that gates
// intimacy-restricted actions.
type RelationshipProvider interface {
	Closeness(ctx context.Context, conversationID string) int
}

// MotionController turns an abstract catalog key into a physical trigger.
// Resolving aliases or fuzzy names is the controller side's responsibility;
// the decision engine only ever emits catalog keys.
type MotionController interface {
	AvailableActions() map[string]string
	Trigger(key string) bool
}
