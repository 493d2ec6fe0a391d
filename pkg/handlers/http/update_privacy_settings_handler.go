package http

import (
	"errors"

	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/care-collective/safeguard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type updatePrivacySettingsHandler struct {
	logger   *logrus.Logger
	settings appPrivacy.SettingsManager
}

func NewUpdatePrivacySettingsHandler(
	logger *logrus.Logger,
	settings appPrivacy.SettingsManager,
) Handler {
	return &updatePrivacySettingsHandler{
		logger:   logger,
		settings: settings,
	}
}

// Handle applies a partial update to the caller's privacy settings.
func (h *updatePrivacySettingsHandler) Handle(c *fiber.Ctx) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var req request.UpdatePrivacySettings
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	update := appPrivacy.SettingsUpdate{
		AutoDeleteExchangesAfterDays: req.AutoDeleteExchangesAfterDays,
		AllowEmergencyOverride:       req.AllowEmergencyOverride,
	}
	if req.DefaultContactSharing != nil {
		update.DefaultContactSharing = &privacy.ContactSharing{
			Email:           req.DefaultContactSharing.Email,
			Phone:           req.DefaultContactSharing.Phone,
			Location:        req.DefaultContactSharing.Location,
			PreferredMethod: privacy.ContactMethod(req.DefaultContactSharing.PreferredMethod),
		}
	}
	if req.CategoryOverrides != nil {
		overrides := make(map[string]privacy.CategoryOverride, len(req.CategoryOverrides))
		for category, override := range req.CategoryOverrides {
			overrides[category] = privacy.CategoryOverride{
				Email:             override.Email,
				Phone:             override.Phone,
				Location:          override.Location,
				EmergencyOverride: override.EmergencyOverride,
			}
		}
		update.CategoryOverrides = overrides
	}

	settings, err := h.settings.Update(c.Context(), userID, update)
	if err != nil {
		if errors.Is(err, privacy.ErrInvalidRetention) || errors.Is(err, privacy.ErrInvalidContactPref) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to update privacy settings")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update settings"})
	}

	return c.Status(fiber.StatusOK).JSON(settings)
}
