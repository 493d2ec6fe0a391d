package rules

import (
	"unicode/utf8"

	"github.com/care-collective/safeguard/pkg/domain/moderation"
)

const LengthDetectorName = "excessive_length"

// DefaultMaxContentLength is the rune count above which a message is
// flagged for excessive length.
const DefaultMaxContentLength = 10000

type LengthDetector struct {
	MaxContentLength int
}

func NewLengthDetector() *LengthDetector {
	return &LengthDetector{MaxContentLength: DefaultMaxContentLength}
}

func (d *LengthDetector) Name() string {
	return LengthDetectorName
}

func (d *LengthDetector) Detect(content string) []Match {
	if d.MaxContentLength <= 0 {
		return nil
	}
	if utf8.RuneCountInString(content) > d.MaxContentLength {
		return []Match{{Rule: "max_content_length", Category: moderation.CategoryExcessiveLength}}
	}
	return nil
}
