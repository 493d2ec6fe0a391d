package moderation

import "strings"

type Category string

const (
	CategoryProfanity       Category = "profanity"
	CategoryPersonalInfo    Category = "personal_info"
	CategorySpam            Category = "spam"
	CategoryScam            Category = "potential_scam"
	CategoryHarassment      Category = "harassment"
	CategoryLowTrustUser    Category = "low_trust_user"
	CategoryExcessiveLength Category = "excessive_length"
)

// severityWeights feed confidence aggregation: confidence = min(1, sum of
// weights of the distinct categories that fired.
var severityWeights = map[Category]float64{
	CategoryProfanity:       0.3,
	CategoryPersonalInfo:    0.7,
	CategorySpam:            0.2,
	CategoryScam:            0.8,
	CategoryHarassment:      0.5,
	CategoryLowTrustUser:    0.3,
	CategoryExcessiveLength: 0.1,
}

func (c Category) Weight() float64 {
	return severityWeights[c]
}

// HighSeverity categories force a block on their own.
func (c Category) HighSeverity() bool {
	switch c {
	case CategoryPersonalInfo, CategoryScam, CategoryHarassment:
		return true
	default:
		return false
	}
}

type SuggestedAction string

const (
	ActionAllow  SuggestedAction = "allow"
	ActionReview SuggestedAction = "flag_for_review"
	ActionBlock  SuggestedAction = "block"
)

// Verdict is the outcome of screening a single message. It is ephemeral:
// persisting or logging it is the caller's concern.
type Verdict struct {
	Flagged         bool            `json:"flagged"`
	Categories      []Category      `json:"categories"`
	Confidence      float64         `json:"confidence"`
	SuggestedAction SuggestedAction `json:"suggested_action"`
	Explanation     string          `json:"explanation"`
}

func (v Verdict) HasCategory(c Category) bool {
	for _, got := range v.Categories {
		if got == c {
			return true
		}
	}
	return false
}

func ExplanationFor(categories []Category) string {
	if len(categories) == 0 {
		return "content appears safe"
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}
	return "content flagged for: " + strings.Join(names, ", ")
}
