package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/care-collective/safeguard/pkg/domain/restriction"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RestrictionRepository struct {
	db *gorm.DB
}

func NewRestrictionRepository(db *gorm.DB) restriction.Repository {
	return &RestrictionRepository{db: db}
}

// Upsert relies on the user_id unique index so concurrent applications
// resolve to last-write-wins instead of duplicate rows.
func (r *RestrictionRepository) Upsert(ctx context.Context, entity *restriction.UserRestriction) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"level", "reason", "applied_by", "applied_at", "expires_at", "message_limit_per_day",
			}),
		}).
		Create(entity).Error; err != nil {
		return fmt.Errorf("failed to upsert restriction: %w", err)
	}
	return nil
}

func (r *RestrictionRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*restriction.UserRestriction, error) {
	entity := new(restriction.UserRestriction)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, restriction.ErrRestrictionNotFound
		}
		return nil, fmt.Errorf("failed to fetch restriction: %w", err)
	}
	return entity, nil
}

func (r *RestrictionRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&restriction.UserRestriction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete restriction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return restriction.ErrRestrictionNotFound
	}
	return nil
}
