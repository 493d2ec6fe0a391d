package moderation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRestrictionLevel = errors.New("invalid restriction level")
	ErrInvalidReportStatus     = errors.New("invalid report status")
	ErrReportNotFound          = errors.New("message report not found")
)

type ReportStatus string

const (
	ReportStatusPending     ReportStatus = "pending"
	ReportStatusDismissed   ReportStatus = "dismissed"
	ReportStatusActionTaken ReportStatus = "action_taken"
)

// Report is a user-filed complaint about a message. Reports with status
// action_taken count as verified for trust scoring.
type Report struct {
	ID             uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	MessageID      uuid.UUID    `json:"message_id" gorm:"type:uuid;index"`
	ReportedUserID uuid.UUID    `json:"reported_user_id" gorm:"type:uuid;index"`
	ReportedBy     uuid.UUID    `json:"reported_by" gorm:"type:uuid"`
	Reason         string       `json:"reason"`
	Description    string       `json:"description"`
	Status         ReportStatus `json:"status" gorm:"index;default:pending"`
	ReviewedBy     *uuid.UUID   `json:"reviewed_by,omitempty" gorm:"type:uuid"`
	ReviewedAt     *time.Time   `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

func (Report) TableName() string {
	return "message_reports"
}

//go:generate mockery --name=ReportRepository --dir=. --output=./mocks --filename=report_repository_mock.go --case=underscore --with-expecter
type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*Report, error)
	// CountByReportedUser returns total and verified report counts for a user.
	CountByReportedUser(ctx context.Context, userID uuid.UUID) (received int, verified int, err error)
	ListPending(ctx context.Context, limit int) ([]Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status ReportStatus, reviewerID *uuid.UUID) error
}
