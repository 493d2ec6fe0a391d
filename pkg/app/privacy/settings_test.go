package privacy_test

import (
	"context"
	"errors"
	"testing"

	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	domain "github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsManager_FirstAccessCreatesDefaults(t *testing.T) {
	userID := uuid.New()
	repo := new(mockSettingsRepository)
	repo.On("GetByUser", mock.Anything, userID).Return(nil, domain.ErrSettingsNotFound)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *domain.Settings) bool {
		return s.UserID == userID &&
			s.DefaultContactSharing.Email &&
			!s.DefaultContactSharing.Phone &&
			s.DefaultContactSharing.Location &&
			s.AutoDeleteExchangesAfterDays == 90 &&
			s.AllowEmergencyOverride
	})).Return(nil)

	manager := appPrivacy.NewSettingsManager(logrus.New(), repo, new(mockAuditRecorder))

	settings, err := manager.Get(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, settings.DefaultContactSharing.Email)
	assert.False(t, settings.DefaultContactSharing.Phone)
	assert.Contains(t, settings.CategoryOverrides, "medical")
	assert.Contains(t, settings.CategoryOverrides, "emergency")
	repo.AssertExpectations(t)
}

func TestSettingsManager_GetFallsBackToDefaultsOnStoreError(t *testing.T) {
	userID := uuid.New()
	repo := new(mockSettingsRepository)
	repo.On("GetByUser", mock.Anything, userID).Return(nil, errors.New("connection refused"))

	manager := appPrivacy.NewSettingsManager(logrus.New(), repo, new(mockAuditRecorder))

	settings, err := manager.Get(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 90, settings.AutoDeleteExchangesAfterDays)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSettingsManager_UpdateValidatesRetention(t *testing.T) {
	userID := uuid.New()
	repo := new(mockSettingsRepository)
	repo.On("GetByUser", mock.Anything, userID).Return(domain.DefaultSettings(userID), nil)

	manager := appPrivacy.NewSettingsManager(logrus.New(), repo, new(mockAuditRecorder))

	tooShort := 3
	_, err := manager.Update(context.Background(), userID, appPrivacy.SettingsUpdate{
		AutoDeleteExchangesAfterDays: &tooShort,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRetention)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSettingsManager_UpdatePersistsChanges(t *testing.T) {
	userID := uuid.New()
	repo := new(mockSettingsRepository)
	repo.On("GetByUser", mock.Anything, userID).Return(domain.DefaultSettings(userID), nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *domain.Settings) bool {
		return s.DefaultContactSharing.Phone && s.AutoDeleteExchangesAfterDays == 30
	})).Return(nil)

	manager := appPrivacy.NewSettingsManager(logrus.New(), repo, new(mockAuditRecorder))

	retention := 30
	settings, err := manager.Update(context.Background(), userID, appPrivacy.SettingsUpdate{
		DefaultContactSharing: &domain.ContactSharing{
			Email:           true,
			Phone:           true,
			Location:        true,
			PreferredMethod: domain.MethodPhone,
		},
		AutoDeleteExchangesAfterDays: &retention,
	})

	require.NoError(t, err)
	assert.True(t, settings.DefaultContactSharing.Phone)
	repo.AssertExpectations(t)
}

func TestSettingsManager_ConsentUpdateIsAudited(t *testing.T) {
	userID := uuid.New()
	repo := new(mockSettingsRepository)
	repo.On("GetByUser", mock.Anything, userID).Return(domain.DefaultSettings(userID), nil)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	recorder := new(mockAuditRecorder)
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(entry interface{}) bool {
		return true
	})).Return()

	manager := appPrivacy.NewSettingsManager(logrus.New(), repo, recorder)

	settings, err := manager.UpdateConsent(context.Background(), userID, appPrivacy.ConsentUpdate{
		ConsentGiven:  true,
		PolicyVersion: "2026-01",
	})

	require.NoError(t, err)
	assert.True(t, settings.GDPRConsentGiven)
	assert.NotNil(t, settings.GDPRConsentDate)
	assert.Equal(t, "2026-01", settings.PrivacyPolicyVersion)
	recorder.AssertExpectations(t)
}
