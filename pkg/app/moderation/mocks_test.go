package moderation_test

import (
	"context"

	"github.com/care-collective/safeguard/pkg/app/restriction"
	"github.com/care-collective/safeguard/pkg/domain/audit"
	domain "github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockReportRepository struct {
	mock.Mock
}

func (m *mockReportRepository) Create(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *mockReportRepository) CountByReportedUser(ctx context.Context, userID uuid.UUID) (int, int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *mockReportRepository) ListPending(ctx context.Context, limit int) ([]domain.Report, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Report), args.Error(1)
}

func (m *mockReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus, reviewerID *uuid.UUID) error {
	args := m.Called(ctx, id, status, reviewerID)
	return args.Error(0)
}

type mockMessageRepository struct {
	mock.Mock
}

func (m *mockMessageRepository) Hide(ctx context.Context, id uuid.UUID, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

type mockApplier struct {
	mock.Mock
}

func (m *mockApplier) Apply(ctx context.Context, cmd restriction.ApplyCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *mockApplier) Lift(ctx context.Context, userID uuid.UUID, liftedBy *uuid.UUID) error {
	args := m.Called(ctx, userID, liftedBy)
	return args.Error(0)
}

type mockAuditRecorder struct {
	mock.Mock
}

func (m *mockAuditRecorder) Record(ctx context.Context, entry audit.Entry) {
	m.Called(ctx, entry)
}
