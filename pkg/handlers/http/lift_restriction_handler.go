package http

import (
	"errors"

	appRestriction "github.com/care-collective/safeguard/pkg/app/restriction"
	"github.com/care-collective/safeguard/pkg/domain/restriction"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type liftRestrictionHandler struct {
	logger  *logrus.Logger
	applier appRestriction.Applier
}

func NewLiftRestrictionHandler(
	logger *logrus.Logger,
	applier appRestriction.Applier,
) Handler {
	return &liftRestrictionHandler{
		logger:  logger,
		applier: applier,
	}
}

// Handle removes the active restriction for a user. Admin only.
func (h *liftRestrictionHandler) Handle(c *fiber.Ctx) error {
	adminID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user_id"})
	}

	if err := h.applier.Lift(c.Context(), userID, &adminID); err != nil {
		if errors.Is(err, restriction.ErrRestrictionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active restriction"})
		}
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to lift restriction")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to lift restriction"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user_id": userID, "status": "lifted"})
}
