package rules

import (
	"fmt"

	"github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

// Config tunes the engine thresholds. Zero values fall back to the
// documented defaults, so a partially populated settings map is fine.
type Config struct {
	// LowTrustThreshold adds the low_trust_user category for any author
	// whose trust score falls below it.
	LowTrustThreshold int `mapstructure:"low_trust_threshold"`
	// LenienceThreshold is the trust score at or above which a single
	// low-severity hit is flagged for review instead of blocked.
	LenienceThreshold int `mapstructure:"lenience_threshold"`
	// BlockConfidence blocks outright once the aggregated confidence
	// exceeds it.
	BlockConfidence   float64 `mapstructure:"block_confidence"`
	RepeatedRunLength int     `mapstructure:"repeated_run_length"`
	MaxContentLength  int     `mapstructure:"max_content_length"`
}

const (
	DefaultLowTrustThreshold = 25
	DefaultLenienceThreshold = 50
	DefaultBlockConfidence   = 0.8
)

func (c *Config) applyDefaults() {
	if c.LowTrustThreshold == 0 {
		c.LowTrustThreshold = DefaultLowTrustThreshold
	}
	if c.LenienceThreshold == 0 {
		c.LenienceThreshold = DefaultLenienceThreshold
	}
	if c.BlockConfidence == 0 {
		c.BlockConfidence = DefaultBlockConfidence
	}
	if c.RepeatedRunLength == 0 {
		c.RepeatedRunLength = DefaultRepeatedRunLength
	}
	if c.MaxContentLength == 0 {
		c.MaxContentLength = DefaultMaxContentLength
	}
}

// ConfigFromSettings decodes a raw settings map into a Config.
func ConfigFromSettings(settings map[string]interface{}) (Config, error) {
	var cfg Config
	if err := mapstructure.Decode(settings, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode moderation rules config: %w", err)
	}
	return cfg, nil
}

// Engine runs an ordered set of independent detectors over message text and
// aggregates their matches into a verdict. It is a pure function of
// (content, trustScore); persistence and logging of verdicts belong to the
// caller.
type Engine struct {
	logger    *logrus.Logger
	cfg       Config
	detectors []Detector
}

func NewEngine(logger *logrus.Logger, cfg Config) *Engine {
	cfg.applyDefaults()

	spam := NewSpamDetector()
	spam.RepeatedRunLength = cfg.RepeatedRunLength
	length := NewLengthDetector()
	length.MaxContentLength = cfg.MaxContentLength

	return &Engine{
		logger: logger,
		cfg:    cfg,
		detectors: []Detector{
			NewProfanityDetector(),
			NewPersonalInfoDetector(),
			spam,
			NewScamDetector(),
			length,
		},
	}
}

// Classify screens content for an author with the given trust score. Empty
// content carries no risk signal and is always allowed.
func (e *Engine) Classify(content string, trustScore int) moderation.Verdict {
	if content == "" {
		return moderation.Verdict{
			Categories:      []moderation.Category{},
			SuggestedAction: moderation.ActionAllow,
			Explanation:     moderation.ExplanationFor(nil),
		}
	}

	seen := make(map[moderation.Category]bool)
	// Kept non-nil so a clean verdict serializes with an empty list.
	categories := []moderation.Category{}
	for _, detector := range e.detectors {
		for _, match := range detector.Detect(content) {
			if !seen[match.Category] {
				seen[match.Category] = true
				categories = append(categories, match.Category)
			}
		}
	}

	if trustScore < e.cfg.LowTrustThreshold && !seen[moderation.CategoryLowTrustUser] {
		categories = append(categories, moderation.CategoryLowTrustUser)
	}

	confidence := 0.0
	highSeverity := false
	for _, c := range categories {
		confidence += c.Weight()
		if c.HighSeverity() {
			highSeverity = true
		}
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	action := moderation.ActionAllow
	switch {
	case len(categories) == 0:
		action = moderation.ActionAllow
	case highSeverity || len(categories) >= 2 || confidence > e.cfg.BlockConfidence:
		action = moderation.ActionBlock
	case trustScore >= e.cfg.LenienceThreshold:
		action = moderation.ActionReview
	default:
		action = moderation.ActionBlock
	}

	return moderation.Verdict{
		Flagged:         len(categories) > 0,
		Categories:      categories,
		Confidence:      confidence,
		SuggestedAction: action,
		Explanation:     moderation.ExplanationFor(categories),
	}
}
