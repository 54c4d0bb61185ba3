package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_EmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		signal := Analyze(text)
		assert.Zero(t, signal.Positive)
		assert.Zero(t, signal.Negative)
		assert.Zero(t, signal.Intensity)
	}
}

func TestAnalyze_NoKeywords(t *testing.T) {
	signal := Analyze("今天天气不错")

	assert.Zero(t, signal.Positive)
	assert.Zero(t, signal.Negative)
}

func TestAnalyze_PositiveKeywordsAccumulate(t *testing.T) {
	// Matches 好, 喜欢, 开心: three distinct keywords at +0.3 each.
	signal := Analyze("我好喜欢你,太开心了")

	assert.InDelta(t, 0.9, signal.Positive, 1e-9)
	assert.Zero(t, signal.Negative)
	assert.InDelta(t, 0.9, signal.Intensity, 1e-9)
}

func TestAnalyze_RepeatedKeywordCountsOnce(t *testing.T) {
	assert.InDelta(t, 0.3, Analyze("哈哈哈哈哈哈").Positive, 1e-9)
}

func TestAnalyze_NegativeKeywordsWeighHigher(t *testing.T) {
	signal := Analyze("讨厌")

	assert.InDelta(t, 0.4, signal.Negative, 1e-9)
	assert.Zero(t, signal.Positive)
}

func TestAnalyze_IntensityCapsAtOne(t *testing.T) {
	// 哼+讨厌+滚+生气 = 1.6 negative, intensity still 1.
	signal := Analyze("哼!讨厌你,滚,我生气了")

	assert.InDelta(t, 1.6, signal.Negative, 1e-9)
	assert.Equal(t, 1.0, signal.Intensity)
}

func TestAnalyze_MixedPolarity(t *testing.T) {
	signal := Analyze("好讨厌")

	// 好 matches positive, 讨厌 matches negative; both sides are kept
	// unclamped so masking sees the raw sums.
	assert.InDelta(t, 0.3, signal.Positive, 1e-9)
	assert.InDelta(t, 0.4, signal.Negative, 1e-9)
	assert.InDelta(t, 0.7, signal.Intensity, 1e-9)
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := "我好喜欢你,太开心了"
	first := Analyze(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Analyze(text))
	}
}
