package privacy_test

import (
	"context"
	"testing"
	"time"

	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	domain "github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeExchange(helperID, requesterID uuid.UUID) *domain.ContactExchange {
	return &domain.ContactExchange{
		ID:               uuid.New(),
		HelpRequestID:    uuid.New(),
		HelperID:         helperID,
		RequesterID:      requesterID,
		Status:           domain.ExchangeCompleted,
		EncryptedContact: []byte("sealed"),
		CreatedAt:        time.Now(),
	}
}

func TestRevoker_EitherPartyMayRevoke(t *testing.T) {
	helperID := uuid.New()
	requesterID := uuid.New()

	for _, party := range []uuid.UUID{helperID, requesterID} {
		exchange := activeExchange(helperID, requesterID)

		exchanges := new(mockExchangeRepository)
		exchanges.On("GetByID", mock.Anything, exchange.ID).Return(exchange, nil)
		exchanges.On("Revoke", mock.Anything, exchange.ID, "changed my mind", mock.Anything).Return(nil)

		history := new(mockHistoryRepository)
		history.On("MarkRevoked", mock.Anything, exchange.ID, party, mock.Anything).Return(nil)

		recorder := new(mockAuditRecorder)
		recorder.On("Record", mock.Anything, mock.Anything).Return()

		revoker := appPrivacy.NewRevoker(logrus.New(), exchanges, history, recorder)

		err := revoker.Revoke(context.Background(), exchange.ID, party, "changed my mind")

		require.NoError(t, err)
		exchanges.AssertExpectations(t)
	}
}

func TestRevoker_RejectsThirdParty(t *testing.T) {
	exchange := activeExchange(uuid.New(), uuid.New())

	exchanges := new(mockExchangeRepository)
	exchanges.On("GetByID", mock.Anything, exchange.ID).Return(exchange, nil)

	revoker := appPrivacy.NewRevoker(logrus.New(), exchanges, new(mockHistoryRepository), new(mockAuditRecorder))

	err := revoker.Revoke(context.Background(), exchange.ID, uuid.New(), "")

	assert.ErrorIs(t, err, appPrivacy.ErrNotExchangeParty)
	exchanges.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRevoker_AlreadyRevokedIsNoOp(t *testing.T) {
	helperID := uuid.New()
	exchange := activeExchange(helperID, uuid.New())
	exchange.Status = domain.ExchangeRevoked
	exchange.EncryptedContact = nil

	exchanges := new(mockExchangeRepository)
	exchanges.On("GetByID", mock.Anything, exchange.ID).Return(exchange, nil)

	revoker := appPrivacy.NewRevoker(logrus.New(), exchanges, new(mockHistoryRepository), new(mockAuditRecorder))

	err := revoker.Revoke(context.Background(), exchange.ID, helperID, "again")

	assert.NoError(t, err)
	exchanges.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRevoker_PrimaryRevokeFailurePropagates(t *testing.T) {
	helperID := uuid.New()
	exchange := activeExchange(helperID, uuid.New())

	exchanges := new(mockExchangeRepository)
	exchanges.On("GetByID", mock.Anything, exchange.ID).Return(exchange, nil)
	exchanges.On("Revoke", mock.Anything, exchange.ID, "", mock.Anything).Return(assert.AnError)

	revoker := appPrivacy.NewRevoker(logrus.New(), exchanges, new(mockHistoryRepository), new(mockAuditRecorder))

	err := revoker.Revoke(context.Background(), exchange.ID, helperID, "")

	assert.ErrorContains(t, err, "failed to revoke contact exchange")
}

func TestRevoker_HistoryFailureDoesNotFailRevocation(t *testing.T) {
	helperID := uuid.New()
	exchange := activeExchange(helperID, uuid.New())

	exchanges := new(mockExchangeRepository)
	exchanges.On("GetByID", mock.Anything, exchange.ID).Return(exchange, nil)
	exchanges.On("Revoke", mock.Anything, exchange.ID, "", mock.Anything).Return(nil)

	history := new(mockHistoryRepository)
	history.On("MarkRevoked", mock.Anything, exchange.ID, helperID, mock.Anything).Return(assert.AnError)

	recorder := new(mockAuditRecorder)
	recorder.On("Record", mock.Anything, mock.Anything).Return()

	revoker := appPrivacy.NewRevoker(logrus.New(), exchanges, history, recorder)

	err := revoker.Revoke(context.Background(), exchange.ID, helperID, "")

	assert.NoError(t, err)
}
