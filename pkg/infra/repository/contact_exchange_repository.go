package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactExchangeRepository struct {
	db *gorm.DB
}

func NewContactExchangeRepository(db *gorm.DB) privacy.ExchangeRepository {
	return &ContactExchangeRepository{db: db}
}

func (r *ContactExchangeRepository) Create(ctx context.Context, exchange *privacy.ContactExchange) error {
	if err := r.db.WithContext(ctx).Create(exchange).Error; err != nil {
		return fmt.Errorf("failed to create contact exchange: %w", err)
	}
	return nil
}

func (r *ContactExchangeRepository) GetByID(ctx context.Context, id uuid.UUID) (*privacy.ContactExchange, error) {
	entity := new(privacy.ContactExchange)
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, privacy.ErrExchangeNotFound
		}
		return nil, fmt.Errorf("failed to fetch contact exchange: %w", err)
	}
	return entity, nil
}

// Revoke nulls the encrypted payload in the same statement as the status
// transition so no revoked row ever retains a readable secret.
func (r *ContactExchangeRepository) Revoke(ctx context.Context, id uuid.UUID, reason string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&privacy.ContactExchange{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":                 privacy.ExchangeRevoked,
			"revoked_at":             &at,
			"revocation_reason":      reason,
			"encrypted_contact_data": nil,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to revoke contact exchange: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return privacy.ErrExchangeNotFound
	}
	return nil
}

func (r *ContactExchangeRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&privacy.ContactExchange{}).
		Where("helper_id = ? OR requester_id = ?", userID, userID).
		Updates(map[string]interface{}{
			"status":                 privacy.ExchangeDeleted,
			"encrypted_contact_data": nil,
		}).Error; err != nil {
		return fmt.Errorf("failed to delete contact exchanges: %w", err)
	}
	return nil
}
