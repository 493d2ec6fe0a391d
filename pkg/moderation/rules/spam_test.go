package rules_test

import (
	"testing"

	"github.com/care-collective/safeguard/pkg/moderation/rules"
	"github.com/stretchr/testify/assert"
)

func TestSpamDetector_PromotionalLanguage(t *testing.T) {
	detector := rules.NewSpamDetector()

	matches := detector.Detect("Buy now and get free money, limited time only!")

	assert.NotEmpty(t, matches)
}

func TestSpamDetector_UntrustedURL(t *testing.T) {
	detector := rules.NewSpamDetector()

	assert.NotEmpty(t, detector.Detect("check out http://sketchy-deals.biz/win"))
	assert.Empty(t, detector.Detect("here is the video https://youtube.com/watch?v=abc"))
}

func TestSpamDetector_RepeatedCharacters(t *testing.T) {
	detector := rules.NewSpamDetector()

	assert.NotEmpty(t, detector.Detect("heeeeeeeeeeeelp"))
	assert.Empty(t, detector.Detect("heeelp"))
}

func TestSpamDetector_RepeatedWords(t *testing.T) {
	detector := rules.NewSpamDetector()

	assert.NotEmpty(t, detector.Detect("please please please respond"))
	assert.Empty(t, detector.Detect("please respond please"))
}

func TestSpamDetector_CleanContent(t *testing.T) {
	detector := rules.NewSpamDetector()

	assert.Empty(t, detector.Detect("I can pick up your prescription on Tuesday"))
}
