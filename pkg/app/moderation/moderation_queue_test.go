package moderation_test

import (
	"context"
	"testing"
	"time"

	appModeration "github.com/care-collective/safeguard/pkg/app/moderation"
	appRestriction "github.com/care-collective/safeguard/pkg/app/restriction"
	domain "github.com/care-collective/safeguard/pkg/domain/moderation"
	domainRestriction "github.com/care-collective/safeguard/pkg/domain/restriction"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingReport(reportedUser uuid.UUID) *domain.Report {
	return &domain.Report{
		ID:             uuid.New(),
		MessageID:      uuid.New(),
		ReportedUserID: reportedUser,
		ReportedBy:     uuid.New(),
		Reason:         "harassment",
		Status:         domain.ReportStatusPending,
		CreatedAt:      time.Now(),
	}
}

func TestQueue_ListPendingUsesDefaultLimit(t *testing.T) {
	reports := new(mockReportRepository)
	reports.On("ListPending", mock.Anything, 50).Return([]domain.Report{}, nil)

	queue := appModeration.NewQueue(logrus.New(), reports, new(mockMessageRepository), new(mockApplier), new(mockAuditRecorder))

	_, err := queue.ListPending(context.Background(), 0)

	require.NoError(t, err)
	reports.AssertExpectations(t)
}

func TestQueue_DismissDoesNotApplyAction(t *testing.T) {
	report := pendingReport(uuid.New())
	reviewerID := uuid.New()

	reports := new(mockReportRepository)
	reports.On("GetByID", mock.Anything, report.ID).Return(report, nil)
	reports.On("UpdateStatus", mock.Anything, report.ID, domain.ReportStatusDismissed, &reviewerID).Return(nil)

	applier := new(mockApplier)
	recorder := new(mockAuditRecorder)
	recorder.On("Record", mock.Anything, mock.Anything).Return()

	queue := appModeration.NewQueue(logrus.New(), reports, new(mockMessageRepository), applier, recorder)

	err := queue.Process(context.Background(), report.ID, appModeration.DecisionDismiss, reviewerID, "no violation")

	require.NoError(t, err)
	applier.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
	reports.AssertExpectations(t)
}

func TestQueue_BanDecisionAppliesBan(t *testing.T) {
	reportedUser := uuid.New()
	report := pendingReport(reportedUser)
	reviewerID := uuid.New()

	reports := new(mockReportRepository)
	reports.On("GetByID", mock.Anything, report.ID).Return(report, nil)
	reports.On("UpdateStatus", mock.Anything, report.ID, domain.ReportStatusActionTaken, &reviewerID).Return(nil)

	applier := new(mockApplier)
	applier.On("Apply", mock.Anything, mock.MatchedBy(func(cmd appRestriction.ApplyCommand) bool {
		return cmd.UserID == reportedUser && cmd.Action == domainRestriction.ActionBan
	})).Return(nil)

	recorder := new(mockAuditRecorder)
	recorder.On("Record", mock.Anything, mock.Anything).Return()

	queue := appModeration.NewQueue(logrus.New(), reports, new(mockMessageRepository), applier, recorder)

	err := queue.Process(context.Background(), report.ID, appModeration.DecisionBanUser, reviewerID, "")

	require.NoError(t, err)
	applier.AssertExpectations(t)
}

func TestQueue_HideMessageFlagsReportedMessage(t *testing.T) {
	report := pendingReport(uuid.New())
	reviewerID := uuid.New()

	reports := new(mockReportRepository)
	reports.On("GetByID", mock.Anything, report.ID).Return(report, nil)
	reports.On("UpdateStatus", mock.Anything, report.ID, domain.ReportStatusActionTaken, &reviewerID).Return(nil)

	messages := new(mockMessageRepository)
	messages.On("Hide", mock.Anything, report.MessageID, report.Reason).Return(nil)

	applier := new(mockApplier)
	recorder := new(mockAuditRecorder)
	recorder.On("Record", mock.Anything, mock.Anything).Return()

	queue := appModeration.NewQueue(logrus.New(), reports, messages, applier, recorder)

	err := queue.Process(context.Background(), report.ID, appModeration.DecisionHideMessage, reviewerID, "")

	require.NoError(t, err)
	messages.AssertExpectations(t)
	applier.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
}

func TestQueue_UnknownReport(t *testing.T) {
	reports := new(mockReportRepository)
	reportID := uuid.New()
	reports.On("GetByID", mock.Anything, reportID).Return(nil, domain.ErrReportNotFound)

	queue := appModeration.NewQueue(logrus.New(), reports, new(mockMessageRepository), new(mockApplier), new(mockAuditRecorder))

	err := queue.Process(context.Background(), reportID, appModeration.DecisionDismiss, uuid.New(), "")

	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestDecisionFromString(t *testing.T) {
	decision, err := appModeration.DecisionFromString("warn_user")
	require.NoError(t, err)
	assert.Equal(t, appModeration.DecisionWarnUser, decision)

	_, err = appModeration.DecisionFromString("escalate")
	assert.ErrorIs(t, err, appModeration.ErrInvalidDecision)
}
