package moderation

import (
	"context"
	"errors"
	"fmt"

	"github.com/care-collective/safeguard/pkg/app/restriction"
	"github.com/care-collective/safeguard/pkg/domain/audit"
	domain "github.com/care-collective/safeguard/pkg/domain/moderation"
	domainRestriction "github.com/care-collective/safeguard/pkg/domain/restriction"
	"github.com/care-collective/safeguard/pkg/infra/auditlogs"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvalidDecision = errors.New("invalid moderation decision")

type Decision string

const (
	DecisionDismiss      Decision = "dismiss"
	DecisionHideMessage  Decision = "hide_message"
	DecisionWarnUser     Decision = "warn_user"
	DecisionRestrictUser Decision = "restrict_user"
	DecisionBanUser      Decision = "ban_user"
)

func DecisionFromString(value string) (Decision, error) {
	switch value {
	case string(DecisionDismiss), string(DecisionHideMessage), string(DecisionWarnUser),
		string(DecisionRestrictUser), string(DecisionBanUser):
		return Decision(value), nil
	default:
		return "", ErrInvalidDecision
	}
}

// Queue exposes the admin review workflow over pending message reports.
//
//go:generate mockery --name=Queue --dir=. --output=./mocks --filename=queue_mock.go --case=underscore --with-expecter
type Queue interface {
	ListPending(ctx context.Context, limit int) ([]domain.Report, error)
	Process(ctx context.Context, reportID uuid.UUID, decision Decision, reviewerID uuid.UUID, notes string) error
}

type queue struct {
	logger   *logrus.Logger
	reports  domain.ReportRepository
	messages domain.MessageRepository
	applier  restriction.Applier
	audit    auditlogs.Recorder
}

func NewQueue(
	logger *logrus.Logger,
	reports domain.ReportRepository,
	messages domain.MessageRepository,
	applier restriction.Applier,
	auditRecorder auditlogs.Recorder,
) Queue {
	return &queue{
		logger:   logger,
		reports:  reports,
		messages: messages,
		applier:  applier,
		audit:    auditRecorder,
	}
}

const defaultQueueLimit = 50

func (q *queue) ListPending(ctx context.Context, limit int) ([]domain.Report, error) {
	if limit <= 0 {
		limit = defaultQueueLimit
	}
	return q.reports.ListPending(ctx, limit)
}

// Process resolves one queue item: the report status update is the primary
// mutation; the enforcement action and audit entry follow it.
func (q *queue) Process(
	ctx context.Context,
	reportID uuid.UUID,
	decision Decision,
	reviewerID uuid.UUID,
	notes string,
) error {
	report, err := q.reports.GetByID(ctx, reportID)
	if err != nil {
		return err
	}

	status := domain.ReportStatusActionTaken
	if decision == DecisionDismiss {
		status = domain.ReportStatusDismissed
	}
	if err := q.reports.UpdateStatus(ctx, reportID, status, &reviewerID); err != nil {
		return err
	}

	switch decision {
	case DecisionDismiss:
		// No enforcement follows a dismissal.
	case DecisionHideMessage:
		err = q.messages.Hide(ctx, report.MessageID, report.Reason)
	case DecisionWarnUser:
		err = q.applier.Apply(ctx, restriction.ApplyCommand{
			UserID:    report.ReportedUserID,
			Action:    domainRestriction.ActionWarn,
			Reason:    fmt.Sprintf("Warning for %s", report.Reason),
			AppliedBy: &reviewerID,
		})
	case DecisionRestrictUser:
		err = q.applier.Apply(ctx, restriction.ApplyCommand{
			UserID:    report.ReportedUserID,
			Action:    domainRestriction.ActionLimit,
			Reason:    fmt.Sprintf("Limited for %s", report.Reason),
			Duration:  "7 days",
			AppliedBy: &reviewerID,
		})
	case DecisionBanUser:
		err = q.applier.Apply(ctx, restriction.ApplyCommand{
			UserID:    report.ReportedUserID,
			Action:    domainRestriction.ActionBan,
			Reason:    fmt.Sprintf("Banned for %s", report.Reason),
			AppliedBy: &reviewerID,
		})
	default:
		return ErrInvalidDecision
	}
	if err != nil {
		return fmt.Errorf("failed to apply review decision: %w", err)
	}

	q.audit.Record(ctx, audit.Entry{
		Action:     audit.ActionReportProcessed,
		ActorID:    &reviewerID,
		TargetType: audit.TargetTypeReport,
		TargetID:   reportID.String(),
		Metadata: map[string]any{
			"decision": string(decision),
			"reason":   report.Reason,
			"notes":    notes,
		},
	})

	return nil
}
