package moderation

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageStatus string

const (
	MessageStatusVisible MessageStatus = "visible"
	MessageStatusHidden  MessageStatus = "hidden"
)

// Message rows are owned by the messaging service; this service only
// touches the moderation columns. The table is excluded from Migrate.
type Message struct {
	ID               uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	SenderID         uuid.UUID     `json:"sender_id" gorm:"type:uuid"`
	ModerationStatus MessageStatus `json:"moderation_status"`
	IsFlagged        bool          `json:"is_flagged"`
	FlaggedReason    *string       `json:"flagged_reason,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}

//go:generate mockery --name=MessageRepository --dir=. --output=./mocks --filename=message_repository_mock.go --case=underscore --with-expecter
type MessageRepository interface {
	// Hide marks a message hidden and records the reason it was flagged.
	Hide(ctx context.Context, id uuid.UUID, reason string) error
}
