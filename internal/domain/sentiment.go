package domain

// SentimentSignal is the polarity of one utterance, derived from fixed
// keyword sets. Positive and Negative are unclamped sums and can exceed 1
// when several keywords match; Intensity is capped at 1.
type SentimentSignal struct {
	Positive  float64
	Negative  float64
	Intensity float64
}
