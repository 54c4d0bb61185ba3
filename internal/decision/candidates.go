package decision

import "github.com/lingbai-i/YueLi/internal/domain"

// Masking cutoffs. Values are calibrated against the scoring weights; change
// them together or not at all.
const (
	negativeMaskCutoff = 0.5
	positiveMaskCutoff = 0.5
)

// EligibleCandidates filters the catalog down to actions compatible with the
// utterance's polarity. The rules apply independently and conjunctively:
// strongly negative text excludes joy-affine actions, strongly positive text
// excludes anger-affine actions. A caller-requested action gets no special
// treatment here; it survives or falls like any other entry.
//
// The post-feedback vector is part of the generator's contract for future
// conflict-set masking; the current rules are driven by sentiment alone.
//
// An empty result is legal: simultaneous high positive and negative polarity
// can mask a catalog where every entry carries a joy or anger affinity.
func EligibleCandidates(actions []domain.ActionDescriptor, _ domain.EmotionVector, signal domain.SentimentSignal) []domain.ActionDescriptor {
	candidates := make([]domain.ActionDescriptor, 0, len(actions))
	for _, action := range actions {
		if signal.Negative > negativeMaskCutoff && action.HasAffinity(domain.AffinityJoy) {
			continue
		}
		if signal.Positive > positiveMaskCutoff && action.HasAffinity(domain.AffinityAnger) {
			continue
		}
		candidates = append(candidates, action)
	}
	return candidates
}
