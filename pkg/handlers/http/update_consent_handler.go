package http

import (
	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	"github.com/care-collective/safeguard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type updateConsentHandler struct {
	logger   *logrus.Logger
	settings appPrivacy.SettingsManager
}

func NewUpdateConsentHandler(
	logger *logrus.Logger,
	settings appPrivacy.SettingsManager,
) Handler {
	return &updateConsentHandler{
		logger:   logger,
		settings: settings,
	}
}

// Handle records the caller's privacy policy consent decision.
func (h *updateConsentHandler) Handle(c *fiber.Ctx) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var req request.UpdateConsent
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	settings, err := h.settings.UpdateConsent(c.Context(), userID, appPrivacy.ConsentUpdate{
		ConsentGiven:  req.ConsentGiven,
		PolicyVersion: req.PolicyVersion,
	})
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to update consent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update consent"})
	}

	return c.Status(fiber.StatusOK).JSON(settings)
}
