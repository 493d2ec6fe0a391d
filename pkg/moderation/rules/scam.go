package rules

import (
	"regexp"

	"github.com/care-collective/safeguard/pkg/domain/moderation"
)

const ScamDetectorName = "potential_scam"

// scamRules catch money-transfer service mentions, urgency-laden financial
// requests, and too-good-to-be-true offers.
var scamRules = []PatternRule{
	{
		Name:     "money_transfer",
		Pattern:  regexp.MustCompile(`(?i)\b(send\s+money|wire\s+transfer|western\s+union|cash\s+app|venmo|paypal)\b`),
		Category: moderation.CategoryScam,
	},
	{
		Name:     "urgent_financial_request",
		Pattern:  regexp.MustCompile(`(?i)\b(emergency\s+funds|urgent\s+money|desperate\s+need|financial\s+crisis)\b`),
		Category: moderation.CategoryScam,
	},
	{
		Name:     "suspicious_offer",
		Pattern:  regexp.MustCompile(`(?i)\b(easy\s+money|work\s+from\s+home|make\s+\$\d+|quick\s+cash)\b`),
		Category: moderation.CategoryScam,
	},
}

func NewScamDetector() Detector {
	return NewPatternDetector(ScamDetectorName, scamRules)
}
