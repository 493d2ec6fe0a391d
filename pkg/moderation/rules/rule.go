package rules

import (
	"regexp"

	"github.com/care-collective/safeguard/pkg/domain/moderation"
)

// Match is a single rule hit. The engine only cares about the category; the
// rule name survives for explanation and debugging.
type Match struct {
	Rule     string
	Category moderation.Category
}

// Detector screens content and reports zero or more matches. Detectors must
// be pure functions of their input.
type Detector interface {
	Name() string
	Detect(content string) []Match
}

// PatternRule is one (pattern, category) entry evaluated in sequence. The
// category carries its severity weight, so the triple from the design notes
// is fully data-driven.
type PatternRule struct {
	Name     string
	Pattern  *regexp.Regexp
	Category moderation.Category
}

// PatternDetector evaluates an ordered list of pattern rules.
type PatternDetector struct {
	name  string
	rules []PatternRule
}

func NewPatternDetector(name string, rules []PatternRule) *PatternDetector {
	return &PatternDetector{name: name, rules: rules}
}

func (d *PatternDetector) Name() string {
	return d.name
}

func (d *PatternDetector) Detect(content string) []Match {
	var matches []Match
	for _, rule := range d.rules {
		if rule.Pattern.MatchString(content) {
			matches = append(matches, Match{Rule: rule.Name, Category: rule.Category})
		}
	}
	return matches
}
