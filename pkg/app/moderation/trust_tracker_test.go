package moderation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appModeration "github.com/care-collective/safeguard/pkg/app/moderation"
	domain "github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrustTracker_NewUserScore(t *testing.T) {
	userID := uuid.New()
	reports := new(mockReportRepository)
	reports.On("CountByReportedUser", mock.Anything, userID).Return(0, 0, nil)

	tracker := appModeration.NewTrustTracker(logrus.New(), reports, nil, time.Minute)

	score, err := tracker.Find(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 75, score.TrustScore)
	assert.Equal(t, domain.LevelNone, score.RestrictionLevel)
	reports.AssertExpectations(t)
}

func TestTrustTracker_VerifiedReportsLowerScore(t *testing.T) {
	userID := uuid.New()
	reports := new(mockReportRepository)
	reports.On("CountByReportedUser", mock.Anything, userID).Return(4, 2, nil)

	tracker := appModeration.NewTrustTracker(logrus.New(), reports, nil, time.Minute)

	score, err := tracker.Find(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 45, score.TrustScore)
	assert.Equal(t, domain.LevelLimited, score.RestrictionLevel)
	assert.Equal(t, 4, score.ReportsReceived)
	assert.Equal(t, 2, score.ReportsVerified)
}

func TestTrustTracker_HistoryErrorPropagates(t *testing.T) {
	userID := uuid.New()
	reports := new(mockReportRepository)
	reports.On("CountByReportedUser", mock.Anything, userID).
		Return(0, 0, errors.New("connection refused"))

	tracker := appModeration.NewTrustTracker(logrus.New(), reports, nil, time.Minute)

	score, err := tracker.Find(context.Background(), userID)

	assert.Nil(t, score)
	assert.ErrorContains(t, err, "failed to load report history")
}
