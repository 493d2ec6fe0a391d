package privacy

import (
	"context"
	"errors"
	"fmt"

	"github.com/care-collective/safeguard/pkg/domain/audit"
	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/care-collective/safeguard/pkg/infra/auditlogs"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DeletionConfirmation must be typed verbatim to authorize erasure.
const DeletionConfirmation = "DELETE_MY_ACCOUNT"

var ErrDeletionNotConfirmed = errors.New("deletion confirmation code does not match")

// DeletionSummary reports what the erasure touched.
type DeletionSummary struct {
	UserID            uuid.UUID `json:"user_id"`
	ExchangesDeleted  bool      `json:"exchanges_deleted"`
	HistoryAnonymized bool      `json:"history_anonymized"`
	SettingsDeleted   bool      `json:"settings_deleted"`
}

//go:generate mockery --name=AccountEraser --dir=. --output=./mocks --filename=account_eraser_mock.go --case=underscore --with-expecter
type AccountEraser interface {
	Erase(ctx context.Context, userID uuid.UUID, confirmation string) (*DeletionSummary, error)
}

type accountEraser struct {
	logger    *logrus.Logger
	exchanges privacy.ExchangeRepository
	history   privacy.HistoryRepository
	settings  privacy.SettingsRepository
	audit     auditlogs.Recorder
}

func NewAccountEraser(
	logger *logrus.Logger,
	exchanges privacy.ExchangeRepository,
	history privacy.HistoryRepository,
	settings privacy.SettingsRepository,
	auditRecorder auditlogs.Recorder,
) AccountEraser {
	return &accountEraser{
		logger:    logger,
		exchanges: exchanges,
		history:   history,
		settings:  settings,
		audit:     auditRecorder,
	}
}

// Erase performs the GDPR right-to-erasure flow: destroy every sealed
// contact payload the user is party to, mark the sharing history deleted,
// and drop the settings row. The final audit entry records that the erasure
// happened without retaining any contact data.
func (e *accountEraser) Erase(ctx context.Context, userID uuid.UUID, confirmation string) (*DeletionSummary, error) {
	if confirmation != DeletionConfirmation {
		return nil, ErrDeletionNotConfirmed
	}

	summary := &DeletionSummary{UserID: userID}

	if err := e.exchanges.DeleteAllForUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete contact exchanges: %w", err)
	}
	summary.ExchangesDeleted = true

	if err := e.history.MarkAllDeletedForUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete sharing history: %w", err)
	}
	summary.HistoryAnonymized = true

	if err := e.settings.DeleteByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete privacy settings: %w", err)
	}
	summary.SettingsDeleted = true

	e.logger.WithField("user_id", userID).Info("account data erased")

	e.audit.Record(ctx, audit.Entry{
		Action:     audit.ActionDataDeletion,
		ActorID:    &userID,
		TargetType: audit.TargetTypeUser,
		TargetID:   userID.String(),
		Metadata: map[string]any{
			"exchanges_deleted":  summary.ExchangesDeleted,
			"history_anonymized": summary.HistoryAnonymized,
			"settings_deleted":   summary.SettingsDeleted,
		},
	})

	return summary, nil
}
