package privacy

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSettingsNotFound   = errors.New("privacy settings not found")
	ErrInvalidRetention   = errors.New("auto-delete retention must be between 7 and 365 days")
	ErrInvalidContactPref = errors.New("preferred contact method must be email or phone")
)

const (
	MinRetentionDays     = 7
	MaxRetentionDays     = 365
	DefaultRetentionDays = 90
)

type ContactMethod string

const (
	MethodEmail ContactMethod = "email"
	MethodPhone ContactMethod = "phone"
)

// ContactSharing holds per-channel disclosure defaults.
type ContactSharing struct {
	Email           bool          `json:"email"`
	Phone           bool          `json:"phone"`
	Location        bool          `json:"location"`
	PreferredMethod ContactMethod `json:"preferred_method"`
}

// CategoryOverride partially overrides the defaults for one help-request
// category. Nil fields inherit the default.
type CategoryOverride struct {
	Email    *bool `json:"email,omitempty"`
	Phone    *bool `json:"phone,omitempty"`
	Location *bool `json:"location,omitempty"`
	// EmergencyOverride is stored for the client surface but does not gate
	// critical-urgency disclosure; only Settings.AllowEmergencyOverride does.
	EmergencyOverride *bool `json:"emergency_override,omitempty"`
}

// Settings is the per-user privacy record. It is created lazily with safe
// defaults on first access and mutated only by its owner.
type Settings struct {
	UserID                       uuid.UUID                   `json:"user_id" gorm:"type:uuid;primaryKey"`
	DefaultContactSharing        ContactSharing              `json:"default_contact_sharing" gorm:"serializer:json"`
	CategoryOverrides            map[string]CategoryOverride `json:"category_privacy_overrides" gorm:"serializer:json"`
	AutoDeleteExchangesAfterDays int                         `json:"auto_delete_exchanges_after_days"`
	AllowEmergencyOverride       bool                        `json:"allow_emergency_override"`
	GDPRConsentGiven             bool                        `json:"gdpr_consent_given"`
	GDPRConsentDate              *time.Time                  `json:"gdpr_consent_date,omitempty"`
	PrivacyPolicyVersion         string                      `json:"privacy_policy_version,omitempty"`
	PrivacyPolicyAcceptedAt      *time.Time                  `json:"privacy_policy_accepted_at,omitempty"`
	CreatedAt                    time.Time                   `json:"created_at"`
	UpdatedAt                    time.Time                   `json:"updated_at"`
}

func (Settings) TableName() string {
	return "user_privacy_settings"
}

func (s *Settings) Validate() error {
	if s.AutoDeleteExchangesAfterDays < MinRetentionDays || s.AutoDeleteExchangesAfterDays > MaxRetentionDays {
		return ErrInvalidRetention
	}
	if s.DefaultContactSharing.PreferredMethod != MethodEmail && s.DefaultContactSharing.PreferredMethod != MethodPhone {
		return ErrInvalidContactPref
	}
	return nil
}

// DefaultSettings are the safe defaults persisted on first access: email and
// location shared, phone withheld, 90-day retention, emergency override on.
// Medical and emergency categories disclose everything up front.
func DefaultSettings(userID uuid.UUID) *Settings {
	open := func() *bool { v := true; return &v }
	return &Settings{
		UserID: userID,
		DefaultContactSharing: ContactSharing{
			Email:           true,
			Phone:           false,
			Location:        true,
			PreferredMethod: MethodEmail,
		},
		CategoryOverrides: map[string]CategoryOverride{
			"medical": {
				Email: open(), Phone: open(), Location: open(), EmergencyOverride: open(),
			},
			"emergency": {
				Email: open(), Phone: open(), Location: open(), EmergencyOverride: open(),
			},
		},
		AutoDeleteExchangesAfterDays: DefaultRetentionDays,
		AllowEmergencyOverride:       true,
		GDPRConsentGiven:             false,
	}
}

type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyCritical Urgency = "critical"
)

func UrgencyFromString(value string) (Urgency, error) {
	switch value {
	case string(UrgencyNormal), string(UrgencyUrgent), string(UrgencyCritical):
		return Urgency(value), nil
	default:
		return "", errors.New("invalid urgency")
	}
}

// SharingPreference is the effective disclosure decision for one help
// request, computed from settings, category overrides and urgency.
type SharingPreference struct {
	HelpRequestID            uuid.UUID `json:"help_request_id"`
	Category                 string    `json:"category"`
	Urgency                  Urgency   `json:"urgency"`
	Email                    bool      `json:"email"`
	Phone                    bool      `json:"phone"`
	Location                 bool      `json:"location"`
	EmergencyOverrideApplied bool      `json:"emergency_override_applied"`
}

//go:generate mockery --name=SettingsRepository --dir=. --output=./mocks --filename=settings_repository_mock.go --case=underscore --with-expecter
type SettingsRepository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*Settings, error)
	Upsert(ctx context.Context, settings *Settings) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
