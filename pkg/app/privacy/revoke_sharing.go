package privacy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/care-collective/safeguard/pkg/domain/audit"
	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/care-collective/safeguard/pkg/infra/auditlogs"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrNotExchangeParty = errors.New("user is not a party to this exchange")

//go:generate mockery --name=Revoker --dir=. --output=./mocks --filename=revoker_mock.go --case=underscore --with-expecter
type Revoker interface {
	Revoke(ctx context.Context, exchangeID, userID uuid.UUID, reason string) error
}

type revoker struct {
	logger    *logrus.Logger
	exchanges privacy.ExchangeRepository
	history   privacy.HistoryRepository
	audit     auditlogs.Recorder
	now       func() time.Time
}

func NewRevoker(
	logger *logrus.Logger,
	exchanges privacy.ExchangeRepository,
	history privacy.HistoryRepository,
	auditRecorder auditlogs.Recorder,
) Revoker {
	return &revoker{
		logger:    logger,
		exchanges: exchanges,
		history:   history,
		audit:     auditRecorder,
		now:       time.Now,
	}
}

// Revoke destroys the sealed contact payload and marks the exchange revoked.
// Either party may revoke. Revoking an already-terminal exchange is a no-op;
// the payload destruction must succeed, the history and audit writes follow
// best-effort.
func (r *revoker) Revoke(ctx context.Context, exchangeID, userID uuid.UUID, reason string) error {
	exchange, err := r.exchanges.GetByID(ctx, exchangeID)
	if err != nil {
		return err
	}
	if !exchange.Party(userID) {
		return ErrNotExchangeParty
	}
	if exchange.Status.Terminal() {
		return nil
	}

	now := r.now()
	if err := r.exchanges.Revoke(ctx, exchangeID, reason, now); err != nil {
		return fmt.Errorf("failed to revoke contact exchange: %w", err)
	}

	if err := r.history.MarkRevoked(ctx, exchangeID, userID, now); err != nil {
		r.logger.WithError(err).WithField("exchange_id", exchangeID).
			Warn("failed to mark sharing history revoked")
	}

	r.audit.Record(ctx, audit.Entry{
		Action:     audit.ActionExchangeRevoked,
		ActorID:    &userID,
		TargetType: audit.TargetTypeExchange,
		TargetID:   exchangeID.String(),
		Metadata:   map[string]any{"reason": reason},
	})

	return nil
}
