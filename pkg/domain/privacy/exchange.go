package privacy

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExchangeNotFound = errors.New("contact exchange not found")
	ErrSelfDisclosure   = errors.New("helper and requester cannot be the same user")
)

type ExchangeStatus string

const (
	ExchangeInitiated ExchangeStatus = "initiated"
	ExchangeCompleted ExchangeStatus = "completed"
	ExchangeRevoked   ExchangeStatus = "revoked"
	ExchangeExpired   ExchangeStatus = "expired"
	ExchangeDeleted   ExchangeStatus = "deleted"
)

// Terminal states are final; revoked and deleted additionally destroy the
// stored contact payload.
func (s ExchangeStatus) Terminal() bool {
	switch s {
	case ExchangeRevoked, ExchangeExpired, ExchangeDeleted:
		return true
	default:
		return false
	}
}

// ContactExchange records one consented disclosure of contact details
// between a helper and a requester. The payload is stored encrypted and is
// nulled irreversibly on revocation or deletion.
type ContactExchange struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	HelpRequestID    uuid.UUID      `json:"help_request_id" gorm:"type:uuid;index"`
	HelperID         uuid.UUID      `json:"helper_id" gorm:"type:uuid;index"`
	RequesterID      uuid.UUID      `json:"requester_id" gorm:"type:uuid;index"`
	Status           ExchangeStatus `json:"status" gorm:"index"`
	EncryptedContact []byte         `json:"-" gorm:"column:encrypted_contact_data"`
	ConsentReference string         `json:"consent_reference,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	RevokedAt        *time.Time     `json:"revoked_at,omitempty"`
	RevocationReason string         `json:"revocation_reason,omitempty"`
}

func (ContactExchange) TableName() string {
	return "contact_exchanges"
}

// Party reports whether the user is one of the two exchange participants.
func (e *ContactExchange) Party(userID uuid.UUID) bool {
	return e.HelperID == userID || e.RequesterID == userID
}

type HistoryStatus string

const (
	HistoryActive  HistoryStatus = "active"
	HistoryRevoked HistoryStatus = "revoked"
	HistoryExpired HistoryStatus = "expired"
	HistoryDeleted HistoryStatus = "deleted"
)

// SharingHistory is the per-user ledger of disclosures, kept alongside the
// exchange itself so a user can review what they shared and with whom.
type SharingHistory struct {
	ID               uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID     `json:"user_id" gorm:"type:uuid;index"`
	ExchangeID       uuid.UUID     `json:"exchange_id" gorm:"type:uuid;index"`
	HelpRequestID    uuid.UUID     `json:"help_request_id" gorm:"type:uuid"`
	SharedWithUserID uuid.UUID     `json:"shared_with_user_id" gorm:"type:uuid"`
	FieldsShared     []string      `json:"fields_shared" gorm:"serializer:json"`
	Status           HistoryStatus `json:"status" gorm:"index"`
	SharedAt         time.Time     `json:"shared_at"`
	RevokedAt        *time.Time    `json:"revoked_at,omitempty"`
}

func (SharingHistory) TableName() string {
	return "contact_sharing_history"
}

//go:generate mockery --name=ExchangeRepository --dir=. --output=./mocks --filename=exchange_repository_mock.go --case=underscore --with-expecter
type ExchangeRepository interface {
	Create(ctx context.Context, exchange *ContactExchange) error
	GetByID(ctx context.Context, id uuid.UUID) (*ContactExchange, error)
	// Revoke transitions the exchange to revoked and nulls the payload.
	Revoke(ctx context.Context, id uuid.UUID, reason string, at time.Time) error
	// DeleteAllForUser marks every exchange the user participates in as
	// deleted and nulls the payloads.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}

type HistoryFilter struct {
	Status *HistoryStatus
	Limit  int
	Offset int
}

//go:generate mockery --name=HistoryRepository --dir=. --output=./mocks --filename=history_repository_mock.go --case=underscore --with-expecter
type HistoryRepository interface {
	Create(ctx context.Context, entry *SharingHistory) error
	ListByUser(ctx context.Context, userID uuid.UUID, filter HistoryFilter) ([]SharingHistory, error)
	MarkRevoked(ctx context.Context, exchangeID, userID uuid.UUID, at time.Time) error
	MarkAllDeletedForUser(ctx context.Context, userID uuid.UUID) error
}
