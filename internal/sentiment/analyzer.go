// Package sentiment derives a signed polarity signal from utterance text.
//
// The analyzer is a fixed keyword heuristic, not NLU: each distinct keyword
// present as a substring contributes a constant increment. It is pure and
// deterministic, so identical text always yields identical signals.
package sentiment

import (
	"math"
	"strings"

	"github.com/lingbai-i/YueLi/internal/domain"
)

// Keyword weights. Negative keywords weigh more so hostile phrasing cuts
// through even when mixed with pleasantries.
const (
	positiveIncrement = 0.3
	negativeIncrement = 0.4
)

var positiveKeywords = []string{"哈哈", "喜欢", "爱", "开心", "棒", "好", "嘿嘿", "嘻嘻"}

var negativeKeywords = []string{"哼", "讨厌", "滚", "不理你", "生气", "烦", "死", "笨蛋"}

// Analyze scores text against the fixed keyword sets. Each distinct matched
// keyword counts once regardless of repetition. Empty or whitespace-only
// text yields the zero signal.
func Analyze(text string) domain.SentimentSignal {
	var signal domain.SentimentSignal
	if strings.TrimSpace(text) == "" {
		return signal
	}

	for _, keyword := range positiveKeywords {
		if strings.Contains(text, keyword) {
			signal.Positive += positiveIncrement
		}
	}
	for _, keyword := range negativeKeywords {
		if strings.Contains(text, keyword) {
			signal.Negative += negativeIncrement
		}
	}

	signal.Intensity = math.Min(1, signal.Positive+signal.Negative)
	return signal
}
