package emotion

import (
	"math"
	"time"

	"github.com/lingbai-i/YueLi/internal/domain"
)

// RetentionPerSecond is the authoritative per-second retention factor. It
// yields an exponential half-life of ln(0.5)/ln(0.998) ≈ 346.6 seconds per
// component. The origin's comments mention a 5 minute half-life; that figure
// is an approximation and is not used anywhere.
const RetentionPerSecond = 0.998

// HalfLife is the time after which an undisturbed component halves.
var HalfLife = time.Duration(math.Log(0.5) / math.Log(RetentionPerSecond) * float64(time.Second))

// Decayed relaxes v toward the all-neutral baseline for the given elapsed
// wall-clock time. Negative elapsed (clock skew) is treated as zero; reverse
// decay never happens.
func Decayed(v domain.EmotionVector, elapsed time.Duration) domain.EmotionVector {
	if elapsed <= 0 {
		return v
	}
	factor := math.Pow(RetentionPerSecond, elapsed.Seconds())

	v.Joy *= factor
	v.Anger *= factor
	v.Sorrow *= factor
	v.Fear *= factor
	v.Surprise *= factor
	// Neutral relaxes toward 1 at the complementary rate.
	v.Neutral += (1 - v.Neutral) * (1 - factor)

	return Clamped(v)
}

// Applied adds delta component-wise and clamps the result. Delta entries that
// do not name one of the six tracked kinds are silently dropped (permissive
// ingest).
func Applied(v domain.EmotionVector, delta domain.EmotionDelta) domain.EmotionVector {
	for kind, change := range delta {
		switch kind {
		case domain.EmotionJoy:
			v.Joy += change
		case domain.EmotionAnger:
			v.Anger += change
		case domain.EmotionSorrow:
			v.Sorrow += change
		case domain.EmotionFear:
			v.Fear += change
		case domain.EmotionSurprise:
			v.Surprise += change
		case domain.EmotionNeutral:
			v.Neutral += change
		}
	}
	return Clamped(v)
}

// Clamped bounds every component to [0,1].
func Clamped(v domain.EmotionVector) domain.EmotionVector {
	v.Joy = clamp01(v.Joy)
	v.Anger = clamp01(v.Anger)
	v.Sorrow = clamp01(v.Sorrow)
	v.Fear = clamp01(v.Fear)
	v.Surprise = clamp01(v.Surprise)
	v.Neutral = clamp01(v.Neutral)
	return v
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
