package http

import (
	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/care-collective/safeguard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type sharingPreferencesHandler struct {
	logger   *logrus.Logger
	resolver appPrivacy.PreferenceResolver
}

func NewSharingPreferencesHandler(
	logger *logrus.Logger,
	resolver appPrivacy.PreferenceResolver,
) Handler {
	return &sharingPreferencesHandler{
		logger:   logger,
		resolver: resolver,
	}
}

// Handle computes the caller's effective disclosure decision for one help
// request.
func (h *sharingPreferencesHandler) Handle(c *fiber.Ctx) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var req request.SharingPreferences
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	helpRequestID, err := uuid.Parse(req.HelpRequestID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid help_request_id"})
	}
	urgency := privacy.UrgencyNormal
	if req.Urgency != "" {
		urgency, err = privacy.UrgencyFromString(req.Urgency)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid urgency"})
		}
	}

	pref := h.resolver.Resolve(c.Context(), appPrivacy.PreferenceQuery{
		UserID:        userID,
		HelpRequestID: helpRequestID,
		Category:      req.Category,
		Urgency:       urgency,
	})

	return c.Status(fiber.StatusOK).JSON(pref)
}
