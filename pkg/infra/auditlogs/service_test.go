package auditlogs_test

import (
	"context"
	"testing"

	"github.com/care-collective/safeguard/pkg/domain/audit"
	"github.com/care-collective/safeguard/pkg/infra/auditlogs"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAuditRepository struct {
	mock.Mock
}

func (m *mockAuditRepository) Insert(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockAuditRepository) ListByTarget(ctx context.Context, targetType, targetID string, limit int) ([]audit.Entry, error) {
	args := m.Called(ctx, targetType, targetID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]audit.Entry), args.Error(1)
}

func TestRecorder_FillsIdentityAndTimestamp(t *testing.T) {
	repo := new(mockAuditRepository)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(e *audit.Entry) bool {
		return e.ID != uuid.Nil && !e.CreatedAt.IsZero()
	})).Return(nil)

	recorder := auditlogs.NewRecorder(logrus.New(), repo)

	recorder.Record(context.Background(), audit.Entry{
		Action:     audit.ActionExchangeCreated,
		TargetType: audit.TargetTypeExchange,
		TargetID:   uuid.New().String(),
	})

	repo.AssertExpectations(t)
}

func TestRecorder_InsertFailureIsSwallowed(t *testing.T) {
	repo := new(mockAuditRepository)
	repo.On("Insert", mock.Anything, mock.Anything).Return(assert.AnError)

	recorder := auditlogs.NewRecorder(logrus.New(), repo)

	// Must not panic or propagate.
	recorder.Record(context.Background(), audit.Entry{
		Action:     audit.ActionDataDeletion,
		TargetType: audit.TargetTypeUser,
		TargetID:   uuid.New().String(),
	})

	repo.AssertExpectations(t)
}
