package http

import (
	appRestriction "github.com/care-collective/safeguard/pkg/app/restriction"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type checkRestrictionsHandler struct {
	logger  *logrus.Logger
	checker appRestriction.Checker
}

func NewCheckRestrictionsHandler(
	logger *logrus.Logger,
	checker appRestriction.Checker,
) Handler {
	return &checkRestrictionsHandler{
		logger:  logger,
		checker: checker,
	}
}

// Handle reports whether the caller may perform the given interaction.
// The check itself degrades to permissive on storage failure, so this
// endpoint only errors on bad input.
func (h *checkRestrictionsHandler) Handle(c *fiber.Ctx) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	msgContext := appRestriction.MessageContext(c.Query("context", string(appRestriction.ContextSendMessage)))
	switch msgContext {
	case appRestriction.ContextSendMessage, appRestriction.ContextStartConversation:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid context"})
	}

	result := h.checker.Check(c.Context(), userID, msgContext)
	return c.Status(fiber.StatusOK).JSON(result)
}
