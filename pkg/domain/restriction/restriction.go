package restriction

import (
	"context"
	"errors"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/google/uuid"
)

var (
	ErrInvalidAction       = errors.New("invalid moderation action")
	ErrInvalidDuration     = errors.New("invalid restriction duration")
	ErrRestrictionNotFound = errors.New("restriction not found")
)

// Action is an administrative enforcement decision.
type Action string

const (
	ActionWarn    Action = "warn"
	ActionLimit   Action = "limit"
	ActionSuspend Action = "suspend"
	ActionBan     Action = "ban"
)

func ActionFromString(value string) (Action, error) {
	switch value {
	case string(ActionWarn), string(ActionLimit), string(ActionSuspend), string(ActionBan):
		return Action(value), nil
	default:
		return "", ErrInvalidAction
	}
}

// Level maps an action to the restriction level it imposes. Warnings are
// audit-only and leave the level at none.
func (a Action) Level() moderation.RestrictionLevel {
	switch a {
	case ActionLimit:
		return moderation.LevelLimited
	case ActionSuspend:
		return moderation.LevelSuspended
	case ActionBan:
		return moderation.LevelBanned
	default:
		return moderation.LevelNone
	}
}

// DefaultLimitedMessageCap is the per-day message cap for limited users.
const DefaultLimitedMessageCap = 10

// UserRestriction is the persisted enforcement record. At most one row per
// user is active at a time: a new application supersedes the prior one.
type UserRestriction struct {
	ID                 uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID                   `json:"user_id" gorm:"type:uuid;uniqueIndex"`
	Level              moderation.RestrictionLevel `json:"restriction_level"`
	Reason             string                      `json:"reason"`
	AppliedBy          *uuid.UUID                  `json:"applied_by,omitempty" gorm:"type:uuid"`
	AppliedAt          time.Time                   `json:"applied_at"`
	ExpiresAt          *time.Time                  `json:"expires_at,omitempty"`
	MessageLimitPerDay *int                        `json:"message_limit_per_day,omitempty"`
}

func (UserRestriction) TableName() string {
	return "user_restrictions"
}

// Active reports whether the restriction is currently in force.
func (r *UserRestriction) Active(now time.Time) bool {
	return r.ExpiresAt == nil || r.ExpiresAt.After(now)
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=restriction_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	// Upsert replaces any prior restriction row for the user.
	Upsert(ctx context.Context, restriction *UserRestriction) error
	GetByUser(ctx context.Context, userID uuid.UUID) (*UserRestriction, error)
	// DeleteByUser returns ErrRestrictionNotFound when no row was removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

// ParseDuration maps the administrative duration labels onto an expiry.
// A nil result means the restriction does not expire.
func ParseDuration(label string, now time.Time) (*time.Time, error) {
	if label == "" || label == "permanent" {
		return nil, nil
	}
	var d time.Duration
	switch label {
	case "1 hour":
		d = time.Hour
	case "24 hours":
		d = 24 * time.Hour
	case "7 days":
		d = 7 * 24 * time.Hour
	case "30 days":
		d = 30 * 24 * time.Hour
	default:
		return nil, ErrInvalidDuration
	}
	expiry := now.Add(d)
	return &expiry, nil
}
