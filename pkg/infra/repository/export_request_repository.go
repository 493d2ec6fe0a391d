package repository

import (
	"context"
	"fmt"

	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExportRequestRepository struct {
	db *gorm.DB
}

func NewExportRequestRepository(db *gorm.DB) privacy.ExportRepository {
	return &ExportRequestRepository{db: db}
}

func (r *ExportRequestRepository) Create(ctx context.Context, request *privacy.ExportRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("failed to create export request: %w", err)
	}
	return nil
}

func (r *ExportRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]privacy.ExportRequest, error) {
	var requests []privacy.ExportRequest
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("requested_at DESC").
		Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list export requests: %w", err)
	}
	return requests, nil
}
