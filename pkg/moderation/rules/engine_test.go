package rules_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/care-collective/safeguard/pkg/moderation/rules"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(t *testing.T) *rules.Engine {
	t.Helper()
	return rules.NewEngine(logrus.New(), rules.Config{})
}

func TestEngine_AllowsSafeContent(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify("Happy to help with your groceries this weekend!", 75)

	assert.False(t, verdict.Flagged)
	assert.Empty(t, verdict.Categories)
	assert.Equal(t, 0.0, verdict.Confidence)
	assert.Equal(t, moderation.ActionAllow, verdict.SuggestedAction)
	assert.Equal(t, "content appears safe", verdict.Explanation)
}

func TestEngine_CleanVerdictSerializesEmptyCategories(t *testing.T) {
	engine := newTestEngine(t)

	for _, content := range []string{"", "Happy to help!"} {
		verdict := engine.Classify(content, 75)

		body, err := json.Marshal(verdict)
		assert.NoError(t, err)
		assert.Contains(t, string(body), `"categories":[]`)
	}
}

func TestEngine_AllowsEmptyContent(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify("", 0)

	assert.False(t, verdict.Flagged)
	assert.Equal(t, moderation.ActionAllow, verdict.SuggestedAction)
}

func TestEngine_BlocksPersonalInfo(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify("Call me at 555-123-4567 anytime", 75)

	assert.True(t, verdict.Flagged)
	assert.Contains(t, verdict.Categories, moderation.CategoryPersonalInfo)
	assert.Equal(t, moderation.ActionBlock, verdict.SuggestedAction)
	assert.InDelta(t, 0.7, verdict.Confidence, 0.001)
}

func TestEngine_BlocksEmailAddress(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify("Email me at someone@example.com instead", 75)

	assert.Contains(t, verdict.Categories, moderation.CategoryPersonalInfo)
	assert.Equal(t, moderation.ActionBlock, verdict.SuggestedAction)
}

func TestEngine_BlocksScamContent(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify("Please do a wire transfer today, act now before it expires", 90)

	assert.True(t, verdict.Flagged)
	assert.Contains(t, verdict.Categories, moderation.CategoryScam)
	assert.Equal(t, moderation.ActionBlock, verdict.SuggestedAction)
}

func TestEngine_TrustedUserGetsReviewForSingleLowSeverityHit(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify("well damn, that took forever", 75)

	assert.True(t, verdict.Flagged)
	assert.Equal(t, []moderation.Category{moderation.CategoryProfanity}, verdict.Categories)
	assert.Equal(t, moderation.ActionReview, verdict.SuggestedAction)
}

func TestEngine_UntrustedUserGetsBlockedForSameContent(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify("well damn, that took forever", 45)

	assert.Equal(t, moderation.ActionBlock, verdict.SuggestedAction)
}

func TestEngine_LowTrustAppendsCategory(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify("well damn, that took forever", 10)

	assert.Contains(t, verdict.Categories, moderation.CategoryLowTrustUser)
	// Two categories force a block.
	assert.Equal(t, moderation.ActionBlock, verdict.SuggestedAction)
}

func TestEngine_LowTrustAloneDoesNotFlagSafeContent(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify("Thanks again for the ride to the clinic", 10)

	assert.Equal(t, []moderation.Category{moderation.CategoryLowTrustUser}, verdict.Categories)
	// A single low-severity category from a low-trust author blocks because
	// the trust score sits below the lenience threshold.
	assert.Equal(t, moderation.ActionBlock, verdict.SuggestedAction)
}

func TestEngine_CategoriesAreDeduplicated(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify("damn damn shit crap hell", 75)

	count := 0
	for _, c := range verdict.Categories {
		if c == moderation.CategoryProfanity {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestEngine_ConfidenceIsCappedAtOne(t *testing.T) {
	engine := newTestEngine(t)

	content := "shit, wire transfer my ssn 123-45-6789 to someone@example.com you creep"
	verdict := engine.Classify(content, 10)

	assert.LessOrEqual(t, verdict.Confidence, 1.0)
	assert.Equal(t, moderation.ActionBlock, verdict.SuggestedAction)
}

func TestEngine_ExcessiveLength(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify(strings.Repeat("a long story ", 1000), 75)

	assert.Contains(t, verdict.Categories, moderation.CategoryExcessiveLength)
}

func TestEngine_ExplanationListsCategories(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify("Call me at 555-123-4567", 75)

	assert.Contains(t, verdict.Explanation, "content flagged for:")
	assert.Contains(t, verdict.Explanation, "personal_info")
}

func TestConfigFromSettings(t *testing.T) {
	cfg, err := rules.ConfigFromSettings(map[string]interface{}{
		"low_trust_threshold": 30,
		"block_confidence":    0.9,
	})

	assert.NoError(t, err)
	assert.Equal(t, 30, cfg.LowTrustThreshold)
	assert.Equal(t, 0.9, cfg.BlockConfidence)
}
