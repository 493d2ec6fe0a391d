package privacy

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/audit"
	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/care-collective/safeguard/pkg/infra/auditlogs"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ExportCommand asks for a data export artifact to be generated.
type ExportCommand struct {
	UserID             uuid.UUID
	RequestType        string
	Format             string
	IncludeDeletedData bool
}

//go:generate mockery --name=Exporter --dir=. --output=./mocks --filename=exporter_mock.go --case=underscore --with-expecter
type Exporter interface {
	Request(ctx context.Context, cmd ExportCommand) (*privacy.ExportRequest, error)
	List(ctx context.Context, userID uuid.UUID) ([]privacy.ExportRequest, error)
}

type exporter struct {
	logger  *logrus.Logger
	exports privacy.ExportRepository
	audit   auditlogs.Recorder
	now     func() time.Time
}

func NewExporter(
	logger *logrus.Logger,
	exports privacy.ExportRepository,
	auditRecorder auditlogs.Recorder,
) Exporter {
	return &exporter{
		logger:  logger,
		exports: exports,
		audit:   auditRecorder,
		now:     time.Now,
	}
}

// Request validates and queues an export. The artifact itself is generated
// out of band; callers poll List and download with the token once ready.
func (e *exporter) Request(ctx context.Context, cmd ExportCommand) (*privacy.ExportRequest, error) {
	requestType, err := privacy.ExportTypeFromString(cmd.RequestType)
	if err != nil {
		return nil, err
	}
	format, err := privacy.ExportFormatFromString(cmd.Format)
	if err != nil {
		return nil, err
	}
	token, err := newDownloadToken()
	if err != nil {
		return nil, err
	}

	now := e.now()
	request := &privacy.ExportRequest{
		ID:                 uuid.New(),
		UserID:             cmd.UserID,
		RequestType:        requestType,
		Format:             format,
		IncludeDeletedData: cmd.IncludeDeletedData,
		Status:             privacy.ExportPending,
		DownloadToken:      token,
		RequestedAt:        now,
		FileExpiresAt:      now.Add(privacy.ExportDownloadTTL),
	}
	if err := e.exports.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create export request: %w", err)
	}

	e.audit.Record(ctx, audit.Entry{
		Action:     audit.ActionExportRequested,
		ActorID:    &cmd.UserID,
		TargetType: audit.TargetTypeExport,
		TargetID:   request.ID.String(),
		Metadata: map[string]any{
			"request_type":         string(requestType),
			"export_format":        string(format),
			"include_deleted_data": cmd.IncludeDeletedData,
		},
	})

	return request, nil
}

func (e *exporter) List(ctx context.Context, userID uuid.UUID) ([]privacy.ExportRequest, error) {
	return e.exports.ListByUser(ctx, userID)
}

func newDownloadToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate download token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
