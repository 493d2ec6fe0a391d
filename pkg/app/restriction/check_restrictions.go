package restriction

import (
	"context"
	"errors"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/care-collective/safeguard/pkg/domain/restriction"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MessageContext names the interaction being attempted.
type MessageContext string

const (
	ContextSendMessage       MessageContext = "send_message"
	ContextStartConversation MessageContext = "start_conversation"
)

// CheckResult answers whether the user may proceed with the interaction.
type CheckResult struct {
	Allowed            bool                        `json:"allowed"`
	Level              moderation.RestrictionLevel `json:"restriction_level"`
	Reason             string                      `json:"reason,omitempty"`
	RequiresApproval   bool                        `json:"requires_approval,omitempty"`
	MessageLimitPerDay *int                        `json:"message_limit_per_day,omitempty"`
	ExpiresAt          *time.Time                  `json:"expires_at,omitempty"`
}

//go:generate mockery --name=Checker --dir=. --output=./mocks --filename=checker_mock.go --case=underscore --with-expecter
type Checker interface {
	Check(ctx context.Context, userID uuid.UUID, msgContext MessageContext) CheckResult
	ActiveRestriction(ctx context.Context, userID uuid.UUID) (*restriction.UserRestriction, error)
}

type checker struct {
	logger       *logrus.Logger
	restrictions restriction.Repository
	now          func() time.Time
}

func NewChecker(logger *logrus.Logger, restrictions restriction.Repository) Checker {
	return &checker{
		logger:       logger,
		restrictions: restrictions,
		now:          time.Now,
	}
}

func allowedResult() CheckResult {
	return CheckResult{Allowed: true, Level: moderation.LevelNone}
}

// Check is fail-open: a lookup failure must never lock a member out of asking
// for help, so errors degrade to an unrestricted result.
func (c *checker) Check(ctx context.Context, userID uuid.UUID, msgContext MessageContext) CheckResult {
	record, err := c.restrictions.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, restriction.ErrRestrictionNotFound) {
			c.logger.WithError(err).WithField("user_id", userID).
				Warn("restriction lookup failed, allowing interaction")
		}
		return allowedResult()
	}

	if !record.Active(c.now()) {
		return allowedResult()
	}

	switch record.Level {
	case moderation.LevelBanned:
		return CheckResult{
			Allowed: false,
			Level:   moderation.LevelBanned,
			Reason:  "Your account has been banned from the platform.",
		}
	case moderation.LevelSuspended:
		reason := "You are currently suspended and cannot send messages."
		if msgContext == ContextStartConversation {
			reason = "You are currently suspended and cannot start conversations."
		}
		return CheckResult{
			Allowed:   false,
			Level:     moderation.LevelSuspended,
			Reason:    reason,
			ExpiresAt: record.ExpiresAt,
		}
	case moderation.LevelLimited:
		if msgContext == ContextStartConversation {
			return CheckResult{
				Allowed:   false,
				Level:     moderation.LevelLimited,
				Reason:    "Your account is limited and cannot start new conversations.",
				ExpiresAt: record.ExpiresAt,
			}
		}
		limit := record.MessageLimitPerDay
		if limit == nil {
			def := restriction.DefaultLimitedMessageCap
			limit = &def
		}
		return CheckResult{
			Allowed:            true,
			Level:              moderation.LevelLimited,
			RequiresApproval:   true,
			MessageLimitPerDay: limit,
			ExpiresAt:          record.ExpiresAt,
		}
	default:
		return allowedResult()
	}
}

// ActiveRestriction returns the current restriction row, or
// restriction.ErrRestrictionNotFound when none is in force.
func (c *checker) ActiveRestriction(ctx context.Context, userID uuid.UUID) (*restriction.UserRestriction, error) {
	record, err := c.restrictions.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !record.Active(c.now()) {
		return nil, restriction.ErrRestrictionNotFound
	}
	return record, nil
}
