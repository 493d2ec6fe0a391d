package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ActionModerationApplied = "MODERATION_ACTION_APPLIED"
	ActionReportProcessed   = "MODERATION_REPORT_PROCESSED"
	ActionExchangeCreated   = "CONTACT_EXCHANGE_CREATED"
	ActionExchangeRevoked   = "CONTACT_EXCHANGE_REVOKED"
	ActionDataDeletion      = "DATA_DELETION_REQUESTED"
	ActionExportRequested   = "DATA_EXPORT_REQUESTED"
	ActionConsentUpdated    = "GDPR_CONSENT_UPDATED"
)

const (
	TargetTypeUser     = "user"
	TargetTypeExchange = "contact_exchange"
	TargetTypeReport   = "message_report"
	TargetTypeExport   = "data_export_request"
)

// Entry is one append-only audit record. Entries are written best-effort
// after the primary mutation succeeds; they are never mutated.
type Entry struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Action     string         `json:"action" gorm:"index"`
	ActorID    *uuid.UUID     `json:"actor_id,omitempty" gorm:"type:uuid;index"`
	TargetType string         `json:"target_type"`
	TargetID   string         `json:"target_id" gorm:"index"`
	Metadata   map[string]any `json:"metadata,omitempty" gorm:"serializer:json"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (Entry) TableName() string {
	return "privacy_audit_log"
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=audit_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Insert(ctx context.Context, entry *Entry) error
	ListByTarget(ctx context.Context, targetType, targetID string, limit int) ([]Entry, error)
}
