package request

// ModerateMessage screens one piece of content before it is delivered.
type ModerateMessage struct {
	Content string `json:"content"`
}

// CheckRestrictions asks whether the caller may perform an interaction.
type CheckRestrictions struct {
	Context string `json:"context"`
}

// ApplyAction is the admin enforcement request.
type ApplyAction struct {
	UserID   string `json:"user_id"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
	Duration string `json:"duration,omitempty"`
}

// ProcessReport resolves one pending moderation queue item.
type ProcessReport struct {
	Decision string `json:"decision"`
	Notes    string `json:"notes,omitempty"`
}

// ContactSharing mirrors the per-channel disclosure defaults.
type ContactSharing struct {
	Email           bool   `json:"email"`
	Phone           bool   `json:"phone"`
	Location        bool   `json:"location"`
	PreferredMethod string `json:"preferred_method"`
}

// CategoryOverride partially overrides the defaults for one category.
type CategoryOverride struct {
	Email             *bool `json:"email,omitempty"`
	Phone             *bool `json:"phone,omitempty"`
	Location          *bool `json:"location,omitempty"`
	EmergencyOverride *bool `json:"emergency_override,omitempty"`
}

// UpdatePrivacySettings carries the owner-editable settings fields. Absent
// fields are left unchanged.
type UpdatePrivacySettings struct {
	DefaultContactSharing        *ContactSharing             `json:"default_contact_sharing,omitempty"`
	CategoryOverrides            map[string]CategoryOverride `json:"category_privacy_overrides,omitempty"`
	AutoDeleteExchangesAfterDays *int                        `json:"auto_delete_exchanges_after_days,omitempty"`
	AllowEmergencyOverride       *bool                       `json:"allow_emergency_override,omitempty"`
}

// UpdateConsent records acceptance or withdrawal of the privacy policy.
type UpdateConsent struct {
	ConsentGiven  bool   `json:"consent_given"`
	PolicyVersion string `json:"policy_version,omitempty"`
}

// SharingPreferences asks for the effective disclosure decision for one
// help request.
type SharingPreferences struct {
	HelpRequestID string `json:"help_request_id"`
	Category      string `json:"category"`
	Urgency       string `json:"urgency"`
}

// RecordExchange records one consented contact disclosure.
type RecordExchange struct {
	HelpRequestID    string `json:"help_request_id"`
	HelperID         string `json:"helper_id"`
	RequesterID      string `json:"requester_id"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Location         string `json:"location,omitempty"`
	ConsentReference string `json:"consent_reference,omitempty"`
}

// RevokeExchange withdraws a disclosure and destroys the payload.
type RevokeExchange struct {
	Reason string `json:"reason,omitempty"`
}

// DeleteAccount is the GDPR erasure request.
type DeleteAccount struct {
	Confirmation string `json:"confirmation"`
}

// CreateExport queues a data export artifact.
type CreateExport struct {
	RequestType        string `json:"request_type"`
	Format             string `json:"format,omitempty"`
	IncludeDeletedData bool   `json:"include_deleted_data,omitempty"`
}
