package privacy

import (
	"context"
	"errors"

	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PreferenceQuery asks what a user is willing to disclose for one help
// request.
type PreferenceQuery struct {
	UserID        uuid.UUID
	HelpRequestID uuid.UUID
	Category      string
	Urgency       privacy.Urgency
}

//go:generate mockery --name=PreferenceResolver --dir=. --output=./mocks --filename=preference_resolver_mock.go --case=underscore --with-expecter
type PreferenceResolver interface {
	Resolve(ctx context.Context, query PreferenceQuery) privacy.SharingPreference
}

type preferenceResolver struct {
	logger   *logrus.Logger
	settings privacy.SettingsRepository
}

func NewPreferenceResolver(logger *logrus.Logger, settings privacy.SettingsRepository) PreferenceResolver {
	return &preferenceResolver{logger: logger, settings: settings}
}

// Resolve layers the effective preference: per-user defaults, then the
// category override, then the emergency override for critical requests.
// A failed settings read degrades to the safe baseline rather than blocking
// a help request.
func (r *preferenceResolver) Resolve(ctx context.Context, query PreferenceQuery) privacy.SharingPreference {
	pref := privacy.SharingPreference{
		HelpRequestID: query.HelpRequestID,
		Category:      query.Category,
		Urgency:       query.Urgency,
		Email:         true,
		Phone:         false,
		Location:      true,
	}

	settings, err := r.settings.GetByUser(ctx, query.UserID)
	if errors.Is(err, privacy.ErrSettingsNotFound) {
		settings = privacy.DefaultSettings(query.UserID)
	} else if err != nil {
		r.logger.WithError(err).WithField("user_id", query.UserID).
			Warn("settings lookup failed, using baseline sharing preference")
		return pref
	}

	pref.Email = settings.DefaultContactSharing.Email
	pref.Phone = settings.DefaultContactSharing.Phone
	pref.Location = settings.DefaultContactSharing.Location

	if override, ok := settings.CategoryOverrides[query.Category]; ok {
		if override.Email != nil {
			pref.Email = *override.Email
		}
		if override.Phone != nil {
			pref.Phone = *override.Phone
		}
		if override.Location != nil {
			pref.Location = *override.Location
		}
	}

	// Critical urgency discloses everything when the user consented to the
	// emergency override. Only the top-level consent counts here; category
	// overrides adjust channels, never the emergency gate.
	if query.Urgency == privacy.UrgencyCritical && settings.AllowEmergencyOverride {
		pref.Email = true
		pref.Phone = true
		pref.Location = true
		pref.EmergencyOverrideApplied = true
	}

	return pref
}
