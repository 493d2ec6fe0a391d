package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SharingHistoryRepository struct {
	db *gorm.DB
}

func NewSharingHistoryRepository(db *gorm.DB) privacy.HistoryRepository {
	return &SharingHistoryRepository{db: db}
}

func (r *SharingHistoryRepository) Create(ctx context.Context, entry *privacy.SharingHistory) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create sharing history entry: %w", err)
	}
	return nil
}

func (r *SharingHistoryRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	filter privacy.HistoryFilter,
) ([]privacy.SharingHistory, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("shared_at DESC")

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var entries []privacy.SharingHistory
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list sharing history: %w", err)
	}
	return entries, nil
}

func (r *SharingHistoryRepository) MarkRevoked(ctx context.Context, exchangeID, userID uuid.UUID, at time.Time) error {
	if err := r.db.WithContext(ctx).
		Model(&privacy.SharingHistory{}).
		Where("exchange_id = ? AND user_id = ?", exchangeID, userID).
		Updates(map[string]interface{}{
			"status":     privacy.HistoryRevoked,
			"revoked_at": &at,
		}).Error; err != nil {
		return fmt.Errorf("failed to mark sharing history revoked: %w", err)
	}
	return nil
}

func (r *SharingHistoryRepository) MarkAllDeletedForUser(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&privacy.SharingHistory{}).
		Where("user_id = ?", userID).
		Update("status", privacy.HistoryDeleted).Error; err != nil {
		return fmt.Errorf("failed to mark sharing history deleted: %w", err)
	}
	return nil
}
