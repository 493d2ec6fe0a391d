package privacy

import (
	"context"
	"errors"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/audit"
	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/care-collective/safeguard/pkg/infra/auditlogs"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SettingsUpdate carries the owner-editable fields. Nil fields are left
// unchanged.
type SettingsUpdate struct {
	DefaultContactSharing        *privacy.ContactSharing
	CategoryOverrides            map[string]privacy.CategoryOverride
	AutoDeleteExchangesAfterDays *int
	AllowEmergencyOverride       *bool
}

// ConsentUpdate records acceptance or withdrawal of a privacy policy version.
type ConsentUpdate struct {
	ConsentGiven  bool
	PolicyVersion string
}

//go:generate mockery --name=SettingsManager --dir=. --output=./mocks --filename=settings_manager_mock.go --case=underscore --with-expecter
type SettingsManager interface {
	Get(ctx context.Context, userID uuid.UUID) (*privacy.Settings, error)
	Update(ctx context.Context, userID uuid.UUID, update SettingsUpdate) (*privacy.Settings, error)
	UpdateConsent(ctx context.Context, userID uuid.UUID, update ConsentUpdate) (*privacy.Settings, error)
}

type settingsManager struct {
	logger   *logrus.Logger
	settings privacy.SettingsRepository
	audit    auditlogs.Recorder
	now      func() time.Time
}

func NewSettingsManager(
	logger *logrus.Logger,
	settings privacy.SettingsRepository,
	auditRecorder auditlogs.Recorder,
) SettingsManager {
	return &settingsManager{
		logger:   logger,
		settings: settings,
		audit:    auditRecorder,
		now:      time.Now,
	}
}

// Get returns the user's settings, creating the default record on first
// access. When the store is unreachable it falls back to in-memory defaults
// so reads never fail outright.
func (m *settingsManager) Get(ctx context.Context, userID uuid.UUID) (*privacy.Settings, error) {
	settings, err := m.settings.GetByUser(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, privacy.ErrSettingsNotFound) {
		m.logger.WithError(err).WithField("user_id", userID).
			Warn("privacy settings lookup failed, serving defaults")
		return privacy.DefaultSettings(userID), nil
	}

	defaults := privacy.DefaultSettings(userID)
	now := m.now()
	defaults.CreatedAt = now
	defaults.UpdatedAt = now
	if err := m.settings.Upsert(ctx, defaults); err != nil {
		m.logger.WithError(err).WithField("user_id", userID).
			Warn("failed to persist default privacy settings")
	}
	return defaults, nil
}

func (m *settingsManager) Update(ctx context.Context, userID uuid.UUID, update SettingsUpdate) (*privacy.Settings, error) {
	settings, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.DefaultContactSharing != nil {
		settings.DefaultContactSharing = *update.DefaultContactSharing
	}
	if update.CategoryOverrides != nil {
		settings.CategoryOverrides = update.CategoryOverrides
	}
	if update.AutoDeleteExchangesAfterDays != nil {
		settings.AutoDeleteExchangesAfterDays = *update.AutoDeleteExchangesAfterDays
	}
	if update.AllowEmergencyOverride != nil {
		settings.AllowEmergencyOverride = *update.AllowEmergencyOverride
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	settings.UpdatedAt = m.now()
	if err := m.settings.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (m *settingsManager) UpdateConsent(ctx context.Context, userID uuid.UUID, update ConsentUpdate) (*privacy.Settings, error) {
	settings, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := m.now()
	settings.GDPRConsentGiven = update.ConsentGiven
	settings.GDPRConsentDate = &now
	if update.ConsentGiven && update.PolicyVersion != "" {
		settings.PrivacyPolicyVersion = update.PolicyVersion
		settings.PrivacyPolicyAcceptedAt = &now
	}
	settings.UpdatedAt = now
	if err := m.settings.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	m.audit.Record(ctx, audit.Entry{
		Action:     audit.ActionConsentUpdated,
		ActorID:    &userID,
		TargetType: audit.TargetTypeUser,
		TargetID:   userID.String(),
		Metadata: map[string]any{
			"consent_given":  update.ConsentGiven,
			"policy_version": update.PolicyVersion,
		},
	})
	return settings, nil
}
