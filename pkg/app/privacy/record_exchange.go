package privacy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/audit"
	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/care-collective/safeguard/pkg/infra/auditlogs"
	"github.com/care-collective/safeguard/pkg/infra/crypto"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ContactPayload is the disclosed contact detail set. It only ever touches
// the database in sealed form.
type ContactPayload struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

func (p ContactPayload) fields() []string {
	var fields []string
	if p.Email != "" {
		fields = append(fields, "email")
	}
	if p.Phone != "" {
		fields = append(fields, "phone")
	}
	if p.Location != "" {
		fields = append(fields, "location")
	}
	return fields
}

// ExchangeCommand records one consented disclosure between two users.
type ExchangeCommand struct {
	HelpRequestID    uuid.UUID
	HelperID         uuid.UUID
	RequesterID      uuid.UUID
	SharerID         uuid.UUID
	Payload          ContactPayload
	ConsentReference string
}

//go:generate mockery --name=ExchangeRecorder --dir=. --output=./mocks --filename=exchange_recorder_mock.go --case=underscore --with-expecter
type ExchangeRecorder interface {
	Record(ctx context.Context, cmd ExchangeCommand) (*privacy.ContactExchange, error)
}

type exchangeRecorder struct {
	logger    *logrus.Logger
	exchanges privacy.ExchangeRepository
	history   privacy.HistoryRepository
	sealer    crypto.Sealer
	audit     auditlogs.Recorder
	now       func() time.Time
}

func NewExchangeRecorder(
	logger *logrus.Logger,
	exchanges privacy.ExchangeRepository,
	history privacy.HistoryRepository,
	sealer crypto.Sealer,
	auditRecorder auditlogs.Recorder,
) ExchangeRecorder {
	return &exchangeRecorder{
		logger:    logger,
		exchanges: exchanges,
		history:   history,
		sealer:    sealer,
		audit:     auditRecorder,
		now:       time.Now,
	}
}

// Record seals the contact payload and persists the exchange. The sharing
// history entry and audit record follow the primary write best-effort.
func (r *exchangeRecorder) Record(ctx context.Context, cmd ExchangeCommand) (*privacy.ContactExchange, error) {
	if cmd.HelperID == cmd.RequesterID {
		return nil, privacy.ErrSelfDisclosure
	}

	raw, err := json.Marshal(cmd.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode contact payload: %w", err)
	}
	sealed, err := r.sealer.Seal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to seal contact payload: %w", err)
	}

	now := r.now()
	exchange := &privacy.ContactExchange{
		ID:               uuid.New(),
		HelpRequestID:    cmd.HelpRequestID,
		HelperID:         cmd.HelperID,
		RequesterID:      cmd.RequesterID,
		Status:           privacy.ExchangeCompleted,
		EncryptedContact: sealed,
		ConsentReference: cmd.ConsentReference,
		CreatedAt:        now,
		CompletedAt:      &now,
	}
	if err := r.exchanges.Create(ctx, exchange); err != nil {
		return nil, fmt.Errorf("failed to record contact exchange: %w", err)
	}

	sharedWith := cmd.HelperID
	if cmd.SharerID == cmd.HelperID {
		sharedWith = cmd.RequesterID
	}
	historyEntry := &privacy.SharingHistory{
		ID:               uuid.New(),
		UserID:           cmd.SharerID,
		ExchangeID:       exchange.ID,
		HelpRequestID:    cmd.HelpRequestID,
		SharedWithUserID: sharedWith,
		FieldsShared:     cmd.Payload.fields(),
		Status:           privacy.HistoryActive,
		SharedAt:         now,
	}
	if err := r.history.Create(ctx, historyEntry); err != nil {
		r.logger.WithError(err).WithField("exchange_id", exchange.ID).
			Warn("failed to write sharing history entry")
	}

	r.audit.Record(ctx, audit.Entry{
		Action:     audit.ActionExchangeCreated,
		ActorID:    &cmd.SharerID,
		TargetType: audit.TargetTypeExchange,
		TargetID:   exchange.ID.String(),
		Metadata: map[string]any{
			"help_request_id": cmd.HelpRequestID.String(),
			"fields_shared":   cmd.Payload.fields(),
		},
	})

	return exchange, nil
}
