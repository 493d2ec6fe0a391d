package http

import (
	"errors"

	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	"github.com/care-collective/safeguard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type deleteAccountHandler struct {
	logger *logrus.Logger
	eraser appPrivacy.AccountEraser
}

func NewDeleteAccountHandler(
	logger *logrus.Logger,
	eraser appPrivacy.AccountEraser,
) Handler {
	return &deleteAccountHandler{
		logger: logger,
		eraser: eraser,
	}
}

// Handle performs the GDPR erasure flow for the caller's own account.
func (h *deleteAccountHandler) Handle(c *fiber.Ctx) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var req request.DeleteAccount
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	summary, err := h.eraser.Erase(c.Context(), userID, req.Confirmation)
	if err != nil {
		if errors.Is(err, appPrivacy.ErrDeletionNotConfirmed) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "confirmation code does not match"})
		}
		h.logger.WithError(err).WithField("user_id", userID).Error("account erasure failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete account data"})
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
