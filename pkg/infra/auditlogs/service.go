package auditlogs

import (
	"context"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/audit"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Recorder appends audit entries best-effort: a failed insert is logged as a
// warning and never propagated, so the primary mutation it trails stays
// durable even when the trail is incomplete.
//
//go:generate mockery --name=Recorder --dir=. --output=./mocks --filename=recorder_mock.go --case=underscore --with-expecter
type Recorder interface {
	Record(ctx context.Context, entry audit.Entry)
}

type recorder struct {
	logger *logrus.Logger
	repo   audit.Repository
}

func NewRecorder(logger *logrus.Logger, repo audit.Repository) Recorder {
	return &recorder{
		logger: logger,
		repo:   repo,
	}
}

func (r *recorder) Record(ctx context.Context, entry audit.Entry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := r.repo.Insert(ctx, &entry); err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"action":      entry.Action,
			"target_type": entry.TargetType,
			"target_id":   entry.TargetID,
		}).Warn("failed to write audit entry")
	}
}
