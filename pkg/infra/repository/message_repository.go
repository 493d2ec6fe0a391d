package repository

import (
	"context"
	"fmt"

	"github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) moderation.MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Hide(ctx context.Context, id uuid.UUID, reason string) error {
	result := r.db.WithContext(ctx).
		Model(&moderation.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"moderation_status": moderation.MessageStatusHidden,
			"is_flagged":        true,
			"flagged_reason":    reason,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to hide message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return moderation.ErrMessageNotFound
	}
	return nil
}
