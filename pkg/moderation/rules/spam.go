package rules

import (
	"regexp"
	"strings"

	"github.com/care-collective/safeguard/pkg/domain/moderation"
)

const SpamDetectorName = "spam"

const (
	// DefaultRepeatedRunLength is the run of identical characters treated as
	// spam. Placeholder value pending tuning against real traffic; keep it
	// configurable and adjust thresholds here rather than in the engine.
	DefaultRepeatedRunLength = 11

	// DefaultRepeatedWordCount flags the same word appearing this many times
	// in a row.
	DefaultRepeatedWordCount = 3
)

var promotionalRule = PatternRule{
	Name:     "promotional_language",
	Pattern:  regexp.MustCompile(`(?i)\b(buy now|click here|act fast|limited time|offer expires|free money|guaranteed)\b`),
	Category: moderation.CategorySpam,
}

var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// trustedLinkDomains are exempt from the untrusted-URL rule.
var trustedLinkDomains = []string{
	"youtube", "google", "facebook", "twitter", "instagram",
	"linkedin", "github", "care-collective",
}

// SpamDetector combines keyword triggers with structural heuristics. The
// structural pieces (repeated characters, repeated words) are evaluated in
// code because they need counting that regular expressions cannot express
// without backreferences.
type SpamDetector struct {
	RepeatedRunLength int
	RepeatedWordCount int
}

func NewSpamDetector() *SpamDetector {
	return &SpamDetector{
		RepeatedRunLength: DefaultRepeatedRunLength,
		RepeatedWordCount: DefaultRepeatedWordCount,
	}
}

func (d *SpamDetector) Name() string {
	return SpamDetectorName
}

func (d *SpamDetector) Detect(content string) []Match {
	var matches []Match

	if promotionalRule.Pattern.MatchString(content) {
		matches = append(matches, Match{Rule: promotionalRule.Name, Category: promotionalRule.Category})
	}
	if d.hasUntrustedURL(content) {
		matches = append(matches, Match{Rule: "untrusted_url", Category: moderation.CategorySpam})
	}
	if d.hasRepeatedRun(content) {
		matches = append(matches, Match{Rule: "repeated_characters", Category: moderation.CategorySpam})
	}
	if d.hasRepeatedWords(content) {
		matches = append(matches, Match{Rule: "repeated_words", Category: moderation.CategorySpam})
	}
	return matches
}

func (d *SpamDetector) hasUntrustedURL(content string) bool {
	for _, raw := range urlPattern.FindAllString(content, -1) {
		lowered := strings.ToLower(raw)
		trusted := false
		for _, domain := range trustedLinkDomains {
			if strings.Contains(lowered, domain) {
				trusted = true
				break
			}
		}
		if !trusted {
			return true
		}
	}
	return false
}

func (d *SpamDetector) hasRepeatedRun(content string) bool {
	if d.RepeatedRunLength <= 0 {
		return false
	}
	var prev rune
	run := 0
	for _, r := range content {
		if r == prev {
			run++
			if run >= d.RepeatedRunLength {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

func (d *SpamDetector) hasRepeatedWords(content string) bool {
	if d.RepeatedWordCount <= 1 {
		return false
	}
	words := strings.Fields(strings.ToLower(content))
	run := 1
	for i := 1; i < len(words); i++ {
		if words[i] == words[i-1] && words[i] != "" {
			run++
			if run >= d.RepeatedWordCount {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}
