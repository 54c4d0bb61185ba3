package domain

// Affinity names an emotional quality an action expresses. Affinities cover
// the six tracked emotion kinds plus "love", which has no vector component of
// its own and is scored as a discount of joy.
type Affinity string

const (
	AffinityJoy      Affinity = "joy"
	AffinityAnger    Affinity = "anger"
	AffinitySorrow   Affinity = "sorrow"
	AffinityFear     Affinity = "fear"
	AffinitySurprise Affinity = "surprise"
	AffinityNeutral  Affinity = "neutral"
	AffinityLove     Affinity = "love"
)

// ActionDescriptor is one entry of the static expressive-action catalog.
// Catalog position is the contract for score tie-breaking, so descriptors are
// enumerated as an ordered slice, never a bare map.
type ActionDescriptor struct {
	// Key is the identifier shared with the motion controller.
	Key string

	// Label is the human-readable display name.
	Label string

	// Affinities maps emotional qualities to weights in [0,1].
	Affinities map[Affinity]float64

	// Conflicts lists emotions the action clashes with. Kept for catalog
	// completeness; masking currently works off affinities alone.
	Conflicts []Affinity

	// MinIntimacy is the relational closeness (0-100) below which the
	// scorer penalizes the action.
	MinIntimacy int
}

// HasAffinity reports whether the descriptor carries a nonzero weight for the
// given affinity.
func (d ActionDescriptor) HasAffinity(a Affinity) bool {
	return d.Affinities[a] > 0
}
