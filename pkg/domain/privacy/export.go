package privacy

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidExportType   = errors.New("invalid export request type")
	ErrInvalidExportFormat = errors.New("invalid export format")
)

type ExportType string

const (
	ExportFull           ExportType = "full_export"
	ExportContactData    ExportType = "contact_data_only"
	ExportPrivacyAudit   ExportType = "privacy_audit"
	ExportSharingHistory ExportType = "sharing_history"
)

func ExportTypeFromString(value string) (ExportType, error) {
	switch value {
	case string(ExportFull), string(ExportContactData), string(ExportPrivacyAudit), string(ExportSharingHistory):
		return ExportType(value), nil
	default:
		return "", ErrInvalidExportType
	}
}

type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
	FormatPDF  ExportFormat = "pdf"
)

func ExportFormatFromString(value string) (ExportFormat, error) {
	switch value {
	case "":
		return FormatJSON, nil
	case string(FormatJSON), string(FormatCSV), string(FormatPDF):
		return ExportFormat(value), nil
	default:
		return "", ErrInvalidExportFormat
	}
}

type ExportStatus string

const (
	ExportPending    ExportStatus = "pending"
	ExportProcessing ExportStatus = "processing"
	ExportReady      ExportStatus = "ready"
	ExportFailed     ExportStatus = "failed"
)

// ExportDownloadTTL is how long the generated artifact stays downloadable.
const ExportDownloadTTL = 7 * 24 * time.Hour

// ExportRequest is the pending record handed to the out-of-band export
// worker; the worker is keyed by ID and gated by the download token.
type ExportRequest struct {
	ID                 uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID    `json:"user_id" gorm:"type:uuid;index"`
	RequestType        ExportType   `json:"request_type"`
	Format             ExportFormat `json:"export_format"`
	IncludeDeletedData bool         `json:"include_deleted_data"`
	Status             ExportStatus `json:"status"`
	DownloadToken      string       `json:"-" gorm:"uniqueIndex"`
	RequestedAt        time.Time    `json:"requested_at"`
	FileExpiresAt      time.Time    `json:"file_expires_at"`
}

func (ExportRequest) TableName() string {
	return "data_export_requests"
}

//go:generate mockery --name=ExportRepository --dir=. --output=./mocks --filename=export_repository_mock.go --case=underscore --with-expecter
type ExportRepository interface {
	Create(ctx context.Context, request *ExportRequest) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ExportRequest, error)
}
