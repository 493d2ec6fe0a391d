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

type recordExchangeHandler struct {
	logger   *logrus.Logger
	recorder appPrivacy.ExchangeRecorder
}

func NewRecordExchangeHandler(
	logger *logrus.Logger,
	recorder appPrivacy.ExchangeRecorder,
) Handler {
	return &recordExchangeHandler{
		logger:   logger,
		recorder: recorder,
	}
}

// Handle records one consented contact disclosure. The caller must be one
// of the two parties.
func (h *recordExchangeHandler) Handle(c *fiber.Ctx) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var req request.RecordExchange
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	helpRequestID, err := uuid.Parse(req.HelpRequestID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid help_request_id"})
	}
	helperID, err := uuid.Parse(req.HelperID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid helper_id"})
	}
	requesterID, err := uuid.Parse(req.RequesterID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid requester_id"})
	}
	if userID != helperID && userID != requesterID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "caller is not a party to this exchange"})
	}

	exchange, err := h.recorder.Record(c.Context(), appPrivacy.ExchangeCommand{
		HelpRequestID: helpRequestID,
		HelperID:      helperID,
		RequesterID:   requesterID,
		SharerID:      userID,
		Payload: appPrivacy.ContactPayload{
			Email:    req.Email,
			Phone:    req.Phone,
			Location: req.Location,
		},
		ConsentReference: req.ConsentReference,
	})
	if err != nil {
		if errors.Is(err, privacy.ErrSelfDisclosure) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "helper and requester must differ"})
		}
		h.logger.WithError(err).WithField("help_request_id", helpRequestID).Error("failed to record exchange")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record exchange"})
	}

	return c.Status(fiber.StatusCreated).JSON(exchange)
}
