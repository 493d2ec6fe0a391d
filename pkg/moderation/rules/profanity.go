package rules

import (
	"regexp"

	"github.com/care-collective/safeguard/pkg/domain/moderation"
)

const ProfanityDetectorName = "profanity"

// profanityRules is a deliberately small dictionary; a production deployment
// would swap in a comprehensive word-list service behind the same detector.
// Self-harm incitement is treated as a profanity pattern, harassment terms
// carry their own category.
var profanityRules = []PatternRule{
	{
		Name:     "explicit_profanity",
		Pattern:  regexp.MustCompile(`(?i)\b(fuck|shit|damn|hell|bitch|bastard|crap)\b`),
		Category: moderation.CategoryProfanity,
	},
	{
		Name:     "self_harm_incitement",
		Pattern:  regexp.MustCompile(`(?i)\b(kill\s+yourself|kys|die)\b`),
		Category: moderation.CategoryProfanity,
	},
	{
		Name:     "harassment_terms",
		Pattern:  regexp.MustCompile(`(?i)\b(stalkers?|creeps?|perverts?)\b`),
		Category: moderation.CategoryHarassment,
	},
}

func NewProfanityDetector() Detector {
	return NewPatternDetector(ProfanityDetectorName, profanityRules)
}
