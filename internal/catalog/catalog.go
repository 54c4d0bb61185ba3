// Package catalog holds the static expressive-action catalog.
//
// The catalog is fixed at process start. Enumeration order matters: the
// decision engine breaks score ties by position, first-defined wins.
package catalog

import "github.com/lingbai-i/YueLi/internal/domain"

// Actions is the catalog in its fixed enumeration order. Keys are the
// contract surface shared with the motion controller.
var Actions = []domain.ActionDescriptor{
	{
		Key:         "angry",
		Label:       "生气",
		Affinities:  map[domain.Affinity]float64{domain.AffinityAnger: 0.8},
		Conflicts:   []domain.Affinity{domain.AffinityJoy, domain.AffinityLove},
		MinIntimacy: 0,
	},
	{
		Key:         "blush",
		Label:       "脸红",
		Affinities:  map[domain.Affinity]float64{domain.AffinityJoy: 0.3, domain.AffinityFear: 0.2},
		Conflicts:   []domain.Affinity{domain.AffinityAnger},
		MinIntimacy: 30,
	},
	{
		Key:         "happy",
		Label:       "开心",
		Affinities:  map[domain.Affinity]float64{domain.AffinityJoy: 0.8},
		Conflicts:   []domain.Affinity{domain.AffinityAnger, domain.AffinitySorrow},
		MinIntimacy: 0,
	},
	{
		Key:         "singing",
		Label:       "唱歌",
		Affinities:  map[domain.Affinity]float64{domain.AffinityJoy: 0.5},
		Conflicts:   []domain.Affinity{domain.AffinitySorrow, domain.AffinityFear},
		MinIntimacy: 0,
	},
	{
		Key:         "gaming",
		Label:       "游戏",
		Affinities:  map[domain.Affinity]float64{domain.AffinityJoy: 0.4, domain.AffinityNeutral: 0.5},
		Conflicts:   []domain.Affinity{domain.AffinityAnger},
		MinIntimacy: 0,
	},
	{
		Key:         "crying",
		Label:       "流泪",
		Affinities:  map[domain.Affinity]float64{domain.AffinitySorrow: 0.9},
		Conflicts:   []domain.Affinity{domain.AffinityJoy},
		MinIntimacy: 0,
	},
	{
		Key:         "stunned",
		Label:       "眩晕",
		Affinities:  map[domain.Affinity]float64{domain.AffinitySurprise: 0.8, domain.AffinityFear: 0.2},
		MinIntimacy: 0,
	},
	{
		Key:         "speechless",
		Label:       "无语",
		Affinities:  map[domain.Affinity]float64{domain.AffinityNeutral: 0.5, domain.AffinityAnger: 0.2},
		Conflicts:   []domain.Affinity{domain.AffinityJoy},
		MinIntimacy: 0,
	},
	{
		Key:         "sleepy",
		Label:       "ZZZ",
		Affinities:  map[domain.Affinity]float64{domain.AffinityNeutral: 0.8},
		Conflicts:   []domain.Affinity{domain.AffinityAnger, domain.AffinityFear, domain.AffinitySurprise},
		MinIntimacy: 0,
	},
	{
		Key:         "dark_face",
		Label:       "脸黑",
		Affinities:  map[domain.Affinity]float64{domain.AffinityAnger: 0.9},
		Conflicts:   []domain.Affinity{domain.AffinityJoy},
		MinIntimacy: 0,
	},
	{
		Key:         "tongue_out",
		Label:       "吐舌",
		Affinities:  map[domain.Affinity]float64{domain.AffinityJoy: 0.6},
		Conflicts:   []domain.Affinity{domain.AffinityAnger, domain.AffinitySorrow},
		MinIntimacy: 20,
	},
	{
		Key:         "heart_eyes",
		Label:       "爱心眼",
		Affinities:  map[domain.Affinity]float64{domain.AffinityJoy: 0.9, domain.AffinityLove: 1.0},
		Conflicts:   []domain.Affinity{domain.AffinityAnger, domain.AffinitySorrow, domain.AffinityFear},
		MinIntimacy: 50,
	},
	{
		Key:         "star_eyes",
		Label:       "星星眼",
		Affinities:  map[domain.Affinity]float64{domain.AffinityJoy: 0.8, domain.AffinitySurprise: 0.3},
		Conflicts:   []domain.Affinity{domain.AffinitySorrow},
		MinIntimacy: 0,
	},
	{
		Key:         "holding_star",
		Label:       "手捧星",
		Affinities:  map[domain.Affinity]float64{domain.AffinityJoy: 0.5},
		Conflicts:   []domain.Affinity{domain.AffinityAnger},
		MinIntimacy: 10,
	},
	{
		Key:         "finger_heart",
		Label:       "比心",
		Affinities:  map[domain.Affinity]float64{domain.AffinityJoy: 0.7, domain.AffinityLove: 0.8},
		Conflicts:   []domain.Affinity{domain.AffinityAnger, domain.AffinitySorrow},
		MinIntimacy: 60,
	},
	{
		Key:         "clutching_chest",
		Label:       "捂胸口",
		Affinities:  map[domain.Affinity]float64{domain.AffinitySurprise: 0.4, domain.AffinityFear: 0.3, domain.AffinityJoy: 0.3},
		MinIntimacy: 0,
	},
	{
		Key:         "praying",
		Label:       "祈祷",
		Affinities:  map[domain.Affinity]float64{domain.AffinityNeutral: 0.5, domain.AffinityFear: 0.2},
		Conflicts:   []domain.Affinity{domain.AffinityAnger},
		MinIntimacy: 0,
	},
	{
		Key:         "leaning_forward",
		Label:       "前倾",
		Affinities:  map[domain.Affinity]float64{domain.AffinityNeutral: 0.5, domain.AffinityJoy: 0.3},
		MinIntimacy: 0,
	},
	// Fallback entry so a fully calm state still has a representable pick.
	{
		Key:         "neutral",
		Label:       "平静",
		Affinities:  map[domain.Affinity]float64{domain.AffinityNeutral: 1.0},
		MinIntimacy: 0,
	},
}

// Lookup returns the descriptor for key, if defined.
func Lookup(key string) (domain.ActionDescriptor, bool) {
	for _, action := range Actions {
		if action.Key == key {
			return action, true
		}
	}
	return domain.ActionDescriptor{}, false
}

// Keys returns the catalog keys in enumeration order.
func Keys() []string {
	keys := make([]string, len(Actions))
	for i, action := range Actions {
		keys[i] = action.Key
	}
	return keys
}
