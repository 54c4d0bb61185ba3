package ingest

import (
	"strings"
	"unicode/utf8"
)

const (
	baseScore     = 10
	lengthBonus   = 20
	mentionBonus  = 30
	questionBonus = 10

	// Messages longer than this are treated as spam and score zero.
	maxMessageRunes = 50

	minLengthForBonus = 5
	maxLengthForBonus = 20
)

var mentionKeywords = []string{"月璃", "YueLi"}

// Filter scores danmaku text for queue priority. Higher scores mean
// more worth reacting to.
type Filter struct {
	// MinScore is the admission threshold; lower-scoring messages are
	// dropped before queueing.
	MinScore int
}

func NewFilter() Filter {
	return Filter{MinScore: 20}
}

// Score rates one message. Length counts runes, not bytes.
func (f Filter) Score(text string) int {
	length := utf8.RuneCountInString(text)
	if length > maxMessageRunes {
		return 0
	}

	score := baseScore

	if length >= minLengthForBonus && length <= maxLengthForBonus {
		score += lengthBonus
	}

	for _, keyword := range mentionKeywords {
		if strings.Contains(text, keyword) {
			score += mentionBonus
			break
		}
	}

	if strings.Contains(text, "?") || strings.Contains(text, "？") {
		score += questionBonus
	}

	return score
}

// Admits reports whether a message scores high enough to queue.
func (f Filter) Admits(score int) bool {
	return score >= f.MinScore
}
