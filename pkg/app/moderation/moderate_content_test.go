package moderation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appModeration "github.com/care-collective/safeguard/pkg/app/moderation"
	domain "github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/care-collective/safeguard/pkg/moderation/rules"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newModerator(t *testing.T, reports *mockReportRepository) appModeration.ContentModerator {
	t.Helper()
	logger := logrus.New()
	engine := rules.NewEngine(logger, rules.Config{})
	scores := appModeration.NewTrustTracker(logger, reports, nil, time.Minute)
	return appModeration.NewContentModerator(logger, engine, scores)
}

func TestContentModerator_AllowsSafeMessage(t *testing.T) {
	userID := uuid.New()
	reports := new(mockReportRepository)
	reports.On("CountByReportedUser", mock.Anything, userID).Return(0, 0, nil)

	moderator := newModerator(t, reports)

	verdict, err := moderator.Moderate(context.Background(), "See you Saturday at the food bank", userID)

	require.NoError(t, err)
	assert.False(t, verdict.Flagged)
	assert.Equal(t, domain.ActionAllow, verdict.SuggestedAction)
}

func TestContentModerator_BlocksPhoneNumber(t *testing.T) {
	userID := uuid.New()
	reports := new(mockReportRepository)
	reports.On("CountByReportedUser", mock.Anything, userID).Return(0, 0, nil)

	moderator := newModerator(t, reports)

	verdict, err := moderator.Moderate(context.Background(), "text me on 555-867-5309", userID)

	require.NoError(t, err)
	assert.True(t, verdict.Flagged)
	assert.Equal(t, domain.ActionBlock, verdict.SuggestedAction)
	assert.Contains(t, verdict.Categories, domain.CategoryPersonalInfo)
}

func TestContentModerator_TrustScoreInfluencesVerdict(t *testing.T) {
	trusted := uuid.New()
	flagged := uuid.New()
	reports := new(mockReportRepository)
	reports.On("CountByReportedUser", mock.Anything, trusted).Return(0, 0, nil)
	reports.On("CountByReportedUser", mock.Anything, flagged).Return(2, 2, nil)

	moderator := newModerator(t, reports)

	content := "damn, missed the bus again"

	trustedVerdict, err := moderator.Moderate(context.Background(), content, trusted)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionReview, trustedVerdict.SuggestedAction)

	flaggedVerdict, err := moderator.Moderate(context.Background(), content, flagged)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionBlock, flaggedVerdict.SuggestedAction)
}

func TestContentModerator_FailsClosedOnScoreError(t *testing.T) {
	userID := uuid.New()
	reports := new(mockReportRepository)
	reports.On("CountByReportedUser", mock.Anything, userID).
		Return(0, 0, errors.New("db down"))

	moderator := newModerator(t, reports)

	verdict, err := moderator.Moderate(context.Background(), "hello", userID)

	assert.Nil(t, verdict)
	assert.ErrorContains(t, err, "failed to resolve trust score")
}
