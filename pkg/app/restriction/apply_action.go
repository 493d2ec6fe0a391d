package restriction

import (
	"context"
	"fmt"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/audit"
	"github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/care-collective/safeguard/pkg/domain/restriction"
	"github.com/care-collective/safeguard/pkg/infra/auditlogs"
	"github.com/care-collective/safeguard/pkg/infra/metrics"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ApplyCommand describes one enforcement decision against a user.
type ApplyCommand struct {
	UserID    uuid.UUID
	Action    restriction.Action
	Reason    string
	Duration  string
	AppliedBy *uuid.UUID
}

//go:generate mockery --name=Applier --dir=. --output=./mocks --filename=applier_mock.go --case=underscore --with-expecter
type Applier interface {
	Apply(ctx context.Context, cmd ApplyCommand) error
	Lift(ctx context.Context, userID uuid.UUID, liftedBy *uuid.UUID) error
}

type applier struct {
	logger       *logrus.Logger
	restrictions restriction.Repository
	audit        auditlogs.Recorder
	now          func() time.Time
}

func NewApplier(
	logger *logrus.Logger,
	restrictions restriction.Repository,
	auditRecorder auditlogs.Recorder,
) Applier {
	return &applier{
		logger:       logger,
		restrictions: restrictions,
		audit:        auditRecorder,
		now:          time.Now,
	}
}

// Apply records the enforcement action. Warnings are audit-only and never
// persist a restriction row. Bans are always permanent regardless of the
// requested duration.
func (a *applier) Apply(ctx context.Context, cmd ApplyCommand) error {
	if _, err := restriction.ActionFromString(string(cmd.Action)); err != nil {
		return err
	}
	now := a.now()

	if cmd.Action != restriction.ActionWarn {
		duration := cmd.Duration
		if cmd.Action == restriction.ActionBan {
			duration = "permanent"
		}
		expiresAt, err := restriction.ParseDuration(duration, now)
		if err != nil {
			return err
		}

		record := &restriction.UserRestriction{
			ID:        uuid.New(),
			UserID:    cmd.UserID,
			Level:     cmd.Action.Level(),
			Reason:    cmd.Reason,
			AppliedBy: cmd.AppliedBy,
			AppliedAt: now,
			ExpiresAt: expiresAt,
		}
		if cmd.Action == restriction.ActionLimit {
			limit := restriction.DefaultLimitedMessageCap
			record.MessageLimitPerDay = &limit
		}
		if err := a.restrictions.Upsert(ctx, record); err != nil {
			return fmt.Errorf("failed to persist restriction: %w", err)
		}
	}

	metrics.RestrictionTotal.WithLabelValues(string(cmd.Action)).Inc()
	a.logger.WithFields(logrus.Fields{
		"user_id": cmd.UserID,
		"action":  cmd.Action,
		"reason":  cmd.Reason,
	}).Info("moderation action applied")

	a.audit.Record(ctx, audit.Entry{
		Action:     audit.ActionModerationApplied,
		ActorID:    cmd.AppliedBy,
		TargetType: audit.TargetTypeUser,
		TargetID:   cmd.UserID.String(),
		Metadata: map[string]any{
			"action":   string(cmd.Action),
			"reason":   cmd.Reason,
			"duration": cmd.Duration,
		},
	})

	return nil
}

// Lift removes any active restriction for the user.
func (a *applier) Lift(ctx context.Context, userID uuid.UUID, liftedBy *uuid.UUID) error {
	if err := a.restrictions.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to lift restriction: %w", err)
	}
	a.audit.Record(ctx, audit.Entry{
		Action:     audit.ActionModerationApplied,
		ActorID:    liftedBy,
		TargetType: audit.TargetTypeUser,
		TargetID:   userID.String(),
		Metadata:   map[string]any{"action": "lift", "level": string(moderation.LevelNone)},
	})
	return nil
}
