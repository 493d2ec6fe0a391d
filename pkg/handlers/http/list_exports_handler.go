package http

import (
	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listExportsHandler struct {
	logger   *logrus.Logger
	exporter appPrivacy.Exporter
}

func NewListExportsHandler(
	logger *logrus.Logger,
	exporter appPrivacy.Exporter,
) Handler {
	return &listExportsHandler{
		logger:   logger,
		exporter: exporter,
	}
}

// Handle lists the caller's export requests, newest first. The download
// token is never echoed back.
func (h *listExportsHandler) Handle(c *fiber.Ctx) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	exports, err := h.exporter.List(c.Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to list export requests")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list exports"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"exports": exports,
		"count":   len(exports),
	})
}
