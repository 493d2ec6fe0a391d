package privacy_test

import (
	"context"
	"testing"
	"time"

	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	domain "github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExporter_CreatesPendingRequest(t *testing.T) {
	userID := uuid.New()

	exports := new(mockExportRepository)
	exports.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.ExportRequest) bool {
		return r.UserID == userID &&
			r.RequestType == domain.ExportFull &&
			r.Format == domain.FormatJSON &&
			r.Status == domain.ExportPending &&
			len(r.DownloadToken) == 64
	})).Return(nil)

	recorder := new(mockAuditRecorder)
	recorder.On("Record", mock.Anything, mock.Anything).Return()

	exporter := appPrivacy.NewExporter(logrus.New(), exports, recorder)

	request, err := exporter.Request(context.Background(), appPrivacy.ExportCommand{
		UserID:      userID,
		RequestType: "full_export",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ExportPending, request.Status)
	assert.WithinDuration(t, request.RequestedAt.Add(7*24*time.Hour), request.FileExpiresAt, time.Second)
	exports.AssertExpectations(t)
}

func TestExporter_TokensAreUnique(t *testing.T) {
	exports := new(mockExportRepository)
	exports.On("Create", mock.Anything, mock.Anything).Return(nil)
	recorder := new(mockAuditRecorder)
	recorder.On("Record", mock.Anything, mock.Anything).Return()

	exporter := appPrivacy.NewExporter(logrus.New(), exports, recorder)

	first, err := exporter.Request(context.Background(), appPrivacy.ExportCommand{
		UserID:      uuid.New(),
		RequestType: "sharing_history",
	})
	require.NoError(t, err)

	second, err := exporter.Request(context.Background(), appPrivacy.ExportCommand{
		UserID:      uuid.New(),
		RequestType: "sharing_history",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.DownloadToken, second.DownloadToken)
}

func TestExporter_RejectsUnknownType(t *testing.T) {
	exporter := appPrivacy.NewExporter(logrus.New(), new(mockExportRepository), new(mockAuditRecorder))

	_, err := exporter.Request(context.Background(), appPrivacy.ExportCommand{
		UserID:      uuid.New(),
		RequestType: "everything",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidExportType)
}

func TestExporter_RejectsUnknownFormat(t *testing.T) {
	exporter := appPrivacy.NewExporter(logrus.New(), new(mockExportRepository), new(mockAuditRecorder))

	_, err := exporter.Request(context.Background(), appPrivacy.ExportCommand{
		UserID:      uuid.New(),
		RequestType: "full_export",
		Format:      "xml",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidExportFormat)
}

func TestExporter_FormatDefaultsToJSON(t *testing.T) {
	exports := new(mockExportRepository)
	exports.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.ExportRequest) bool {
		return r.Format == domain.FormatJSON
	})).Return(nil)
	recorder := new(mockAuditRecorder)
	recorder.On("Record", mock.Anything, mock.Anything).Return()

	exporter := appPrivacy.NewExporter(logrus.New(), exports, recorder)

	_, err := exporter.Request(context.Background(), appPrivacy.ExportCommand{
		UserID:      uuid.New(),
		RequestType: "privacy_audit",
	})

	require.NoError(t, err)
	exports.AssertExpectations(t)
}
