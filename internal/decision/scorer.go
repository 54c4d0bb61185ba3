package decision

import (
	"fmt"

	"github.com/lingbai-i/YueLi/internal/domain"
)

// Scoring weights, preserved exactly from the original tuning. The masking
// cutoffs in candidates.go were calibrated against these.
const (
	baseScore         = 10.0
	resonanceWeight   = 50.0
	loveJoyDiscount   = 0.8
	intimacyPenalty   = 2.0
	intimacyBonus     = 10.0
	intimacyBonusBand = 30
	textMatchBonus    = 20.0
	textMatchCutoff   = 0.3
)

// Score computes the desirability of one candidate against the current
// emotion vector, the relational closeness and the utterance sentiment. The
// returned trace lists the contributing factors in evaluation order.
func Score(action domain.ActionDescriptor, vector domain.EmotionVector, intimacy int, signal domain.SentimentSignal) (float64, []string) {
	score := baseScore
	var trace []string

	// Emotional resonance: dot product of the action's affinities with the
	// current vector. "love" has no vector component of its own and is
	// modeled as a discount of joy.
	resonance := 0.0
	for affinity, weight := range action.Affinities {
		var value float64
		if affinity == domain.AffinityLove {
			value = vector.Joy * loveJoyDiscount
		} else {
			value = vector.Component(domain.EmotionKind(affinity))
		}
		resonance += value * weight * resonanceWeight
	}
	if resonance > 0 {
		score += resonance
		trace = append(trace, fmt.Sprintf("EmoRes(+%.1f)", resonance))
	}

	// Relational gating: soft penalty below the threshold, small bonus when
	// closeness clears it by a wide margin, nothing in between.
	if required := action.MinIntimacy; intimacy < required {
		penalty := float64(required-intimacy) * intimacyPenalty
		score -= penalty
		trace = append(trace, fmt.Sprintf("IntimacyLow(-%.1f)", penalty))
	} else if intimacy >= required+intimacyBonusBand {
		score += intimacyBonus
		trace = append(trace, "IntimacyBonus")
	}

	// Text match: the utterance's own polarity reinforcing an aligned action.
	if signal.Positive > textMatchCutoff && action.HasAffinity(domain.AffinityJoy) {
		score += textMatchBonus
		trace = append(trace, "TextPosMatch")
	}
	if signal.Negative > textMatchCutoff && action.HasAffinity(domain.AffinityAnger) {
		score += textMatchBonus
		trace = append(trace, "TextNegMatch")
	}

	return score, trace
}
