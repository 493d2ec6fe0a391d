package http

import (
	"errors"

	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/care-collective/safeguard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type revokeExchangeHandler struct {
	logger  *logrus.Logger
	revoker appPrivacy.Revoker
}

func NewRevokeExchangeHandler(
	logger *logrus.Logger,
	revoker appPrivacy.Revoker,
) Handler {
	return &revokeExchangeHandler{
		logger:  logger,
		revoker: revoker,
	}
}

// Handle withdraws a contact disclosure and destroys the stored payload.
func (h *revokeExchangeHandler) Handle(c *fiber.Ctx) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	exchangeID, err := uuid.Parse(c.Params("exchange_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid exchange_id"})
	}

	var req request.RevokeExchange
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	err = h.revoker.Revoke(c.Context(), exchangeID, userID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, privacy.ErrExchangeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "exchange not found"})
		case errors.Is(err, appPrivacy.ErrNotExchangeParty):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "caller is not a party to this exchange"})
		default:
			h.logger.WithError(err).WithField("exchange_id", exchangeID).Error("failed to revoke exchange")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to revoke exchange"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"exchange_id": exchangeID, "status": "revoked"})
}
