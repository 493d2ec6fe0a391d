package http

import (
	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getPrivacySettingsHandler struct {
	logger   *logrus.Logger
	settings appPrivacy.SettingsManager
}

func NewGetPrivacySettingsHandler(
	logger *logrus.Logger,
	settings appPrivacy.SettingsManager,
) Handler {
	return &getPrivacySettingsHandler{
		logger:   logger,
		settings: settings,
	}
}

// Handle returns the caller's privacy settings, creating defaults on first
// access.
func (h *getPrivacySettingsHandler) Handle(c *fiber.Ctx) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	settings, err := h.settings.Get(c.Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to load privacy settings")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load settings"})
	}

	return c.Status(fiber.StatusOK).JSON(settings)
}
