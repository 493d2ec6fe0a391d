package restriction_test

import (
	"context"

	"github.com/care-collective/safeguard/pkg/domain/audit"
	domain "github.com/care-collective/safeguard/pkg/domain/restriction"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockRestrictionRepository struct {
	mock.Mock
}

func (m *mockRestrictionRepository) Upsert(ctx context.Context, restriction *domain.UserRestriction) error {
	args := m.Called(ctx, restriction)
	return args.Error(0)
}

func (m *mockRestrictionRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.UserRestriction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRestriction), args.Error(1)
}

func (m *mockRestrictionRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockAuditRecorder struct {
	mock.Mock
}

func (m *mockAuditRecorder) Record(ctx context.Context, entry audit.Entry) {
	m.Called(ctx, entry)
}
