package http

import (
	appModeration "github.com/care-collective/safeguard/pkg/app/moderation"
	"github.com/care-collective/safeguard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type moderateMessageHandler struct {
	logger    *logrus.Logger
	moderator appModeration.ContentModerator
}

func NewModerateMessageHandler(
	logger *logrus.Logger,
	moderator appModeration.ContentModerator,
) Handler {
	return &moderateMessageHandler{
		logger:    logger,
		moderator: moderator,
	}
}

// Handle screens the caller's message content and returns the verdict.
// A screening failure is a 503: content is never delivered unscreened.
func (h *moderateMessageHandler) Handle(c *fiber.Ctx) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var req request.ModerateMessage
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	verdict, err := h.moderator.Moderate(c.Context(), req.Content, userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("content moderation failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "moderation unavailable"})
	}

	return c.Status(fiber.StatusOK).JSON(verdict)
}
