package http

import (
	"errors"

	appRestriction "github.com/care-collective/safeguard/pkg/app/restriction"
	"github.com/care-collective/safeguard/pkg/domain/restriction"
	"github.com/care-collective/safeguard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type applyActionHandler struct {
	logger  *logrus.Logger
	applier appRestriction.Applier
}

func NewApplyActionHandler(
	logger *logrus.Logger,
	applier appRestriction.Applier,
) Handler {
	return &applyActionHandler{
		logger:  logger,
		applier: applier,
	}
}

// Handle applies an enforcement action against a user. Admin only.
func (h *applyActionHandler) Handle(c *fiber.Ctx) error {
	adminID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var req request.ApplyAction
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user_id"})
	}
	action, err := restriction.ActionFromString(req.Action)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid action"})
	}
	if req.Reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "reason is required"})
	}

	err = h.applier.Apply(c.Context(), appRestriction.ApplyCommand{
		UserID:    userID,
		Action:    action,
		Reason:    req.Reason,
		Duration:  req.Duration,
		AppliedBy: &adminID,
	})
	if err != nil {
		if errors.Is(err, restriction.ErrInvalidDuration) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid duration"})
		}
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to apply moderation action")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to apply action"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user_id": userID,
		"action":  action,
		"status":  "applied",
	})
}
