package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PrivacySettingsRepository struct {
	db *gorm.DB
}

func NewPrivacySettingsRepository(db *gorm.DB) privacy.SettingsRepository {
	return &PrivacySettingsRepository{db: db}
}

func (r *PrivacySettingsRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*privacy.Settings, error) {
	entity := new(privacy.Settings)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, privacy.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to fetch privacy settings: %w", err)
	}
	return entity, nil
}

func (r *PrivacySettingsRepository) Upsert(ctx context.Context, settings *privacy.Settings) error {
	settings.UpdatedAt = time.Now()
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = settings.UpdatedAt
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(settings).Error; err != nil {
		return fmt.Errorf("failed to upsert privacy settings: %w", err)
	}
	return nil
}

func (r *PrivacySettingsRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&privacy.Settings{}).Error; err != nil {
		return fmt.Errorf("failed to delete privacy settings: %w", err)
	}
	return nil
}
