package http

import (
	appModeration "github.com/care-collective/safeguard/pkg/app/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getTrustScoreHandler struct {
	logger *logrus.Logger
	scores appModeration.ScoreFinder
}

func NewGetTrustScoreHandler(
	logger *logrus.Logger,
	scores appModeration.ScoreFinder,
) Handler {
	return &getTrustScoreHandler{
		logger: logger,
		scores: scores,
	}
}

// Handle returns the derived trust score and capabilities for a user.
// Admin only.
func (h *getTrustScoreHandler) Handle(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user_id"})
	}

	score, err := h.scores.Find(c.Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to compute trust score")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to compute trust score"})
	}

	return c.Status(fiber.StatusOK).JSON(score)
}
