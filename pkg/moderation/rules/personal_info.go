package rules

import (
	"regexp"

	"github.com/care-collective/safeguard/pkg/domain/moderation"
)

const PersonalInfoDetectorName = "personal_info"

// personalInfoRules cover the PII families maskable in messages: phone
// numbers in the common delimiter styles, email addresses, SSN-like and
// card-like digit groups, and street-address shapes.
var personalInfoRules = []PatternRule{
	{
		Name:     "phone_number",
		Pattern:  regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		Category: moderation.CategoryPersonalInfo,
	},
	{
		Name:     "phone_number_parens",
		Pattern:  regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.]?\d{4}\b`),
		Category: moderation.CategoryPersonalInfo,
	},
	{
		Name:     "email_address",
		Pattern:  regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		Category: moderation.CategoryPersonalInfo,
	},
	{
		Name:     "ssn",
		Pattern:  regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		Category: moderation.CategoryPersonalInfo,
	},
	{
		Name:     "credit_card",
		Pattern:  regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`),
		Category: moderation.CategoryPersonalInfo,
	},
	{
		Name:     "street_address",
		Pattern:  regexp.MustCompile(`(?i)\b\d+\s+\w+(\s\w+)?\s+(street|st|avenue|ave|road|rd|drive|dr|lane|ln|court|ct|boulevard|blvd)\b`),
		Category: moderation.CategoryPersonalInfo,
	},
}

func NewPersonalInfoDetector() Detector {
	return NewPatternDetector(PersonalInfoDetectorName, personalInfoRules)
}
