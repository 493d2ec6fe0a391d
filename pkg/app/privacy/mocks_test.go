package privacy_test

import (
	"context"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/audit"
	domain "github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockSettingsRepository struct {
	mock.Mock
}

func (m *mockSettingsRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Settings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *mockSettingsRepository) Upsert(ctx context.Context, settings *domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *mockSettingsRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockExchangeRepository struct {
	mock.Mock
}

func (m *mockExchangeRepository) Create(ctx context.Context, exchange *domain.ContactExchange) error {
	args := m.Called(ctx, exchange)
	return args.Error(0)
}

func (m *mockExchangeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactExchange, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactExchange), args.Error(1)
}

func (m *mockExchangeRepository) Revoke(ctx context.Context, id uuid.UUID, reason string, at time.Time) error {
	args := m.Called(ctx, id, reason, at)
	return args.Error(0)
}

func (m *mockExchangeRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockHistoryRepository struct {
	mock.Mock
}

func (m *mockHistoryRepository) Create(ctx context.Context, entry *domain.SharingHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) ([]domain.SharingHistory, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SharingHistory), args.Error(1)
}

func (m *mockHistoryRepository) MarkRevoked(ctx context.Context, exchangeID, userID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, exchangeID, userID, at)
	return args.Error(0)
}

func (m *mockHistoryRepository) MarkAllDeletedForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockExportRepository struct {
	mock.Mock
}

func (m *mockExportRepository) Create(ctx context.Context, request *domain.ExportRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *mockExportRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExportRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExportRequest), args.Error(1)
}

type mockAuditRecorder struct {
	mock.Mock
}

func (m *mockAuditRecorder) Record(ctx context.Context, entry audit.Entry) {
	m.Called(ctx, entry)
}

type mockSealer struct {
	mock.Mock
}

func (m *mockSealer) Seal(plaintext []byte) ([]byte, error) {
	args := m.Called(plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockSealer) Open(ciphertext []byte) ([]byte, error) {
	args := m.Called(ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
