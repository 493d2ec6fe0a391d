package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) moderation.ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, report *moderation.Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("failed to create message report: %w", err)
	}
	return nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*moderation.Report, error) {
	entity := new(moderation.Report)
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, moderation.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch message report: %w", err)
	}
	return entity, nil
}

func (r *ReportRepository) CountByReportedUser(ctx context.Context, userID uuid.UUID) (int, int, error) {
	var received, verified int64
	if err := r.db.WithContext(ctx).
		Model(&moderation.Report{}).
		Where("reported_user_id = ?", userID).
		Count(&received).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count reports: %w", err)
	}
	if err := r.db.WithContext(ctx).
		Model(&moderation.Report{}).
		Where("reported_user_id = ? AND status = ?", userID, moderation.ReportStatusActionTaken).
		Count(&verified).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count verified reports: %w", err)
	}
	return int(received), int(verified), nil
}

func (r *ReportRepository) ListPending(ctx context.Context, limit int) ([]moderation.Report, error) {
	var reports []moderation.Report
	if err := r.db.WithContext(ctx).
		Where("status = ?", moderation.ReportStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending reports: %w", err)
	}
	return reports, nil
}

func (r *ReportRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status moderation.ReportStatus,
	reviewerID *uuid.UUID,
) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&moderation.Report{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"reviewed_by": reviewerID,
			"reviewed_at": &now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update report status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return moderation.ErrReportNotFound
	}
	return nil
}
