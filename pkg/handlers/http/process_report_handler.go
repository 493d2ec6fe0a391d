package http

import (
	"errors"

	appModeration "github.com/care-collective/safeguard/pkg/app/moderation"
	domain "github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/care-collective/safeguard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type processReportHandler struct {
	logger *logrus.Logger
	queue  appModeration.Queue
}

func NewProcessReportHandler(
	logger *logrus.Logger,
	queue appModeration.Queue,
) Handler {
	return &processReportHandler{
		logger: logger,
		queue:  queue,
	}
}

// Handle resolves one pending report with a reviewer decision. Admin only.
func (h *processReportHandler) Handle(c *fiber.Ctx) error {
	reviewerID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	reportID, err := uuid.Parse(c.Params("report_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid report_id"})
	}

	var req request.ProcessReport
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	decision, err := appModeration.DecisionFromString(req.Decision)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid decision"})
	}

	err = h.queue.Process(c.Context(), reportID, decision, reviewerID, req.Notes)
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "report not found"})
		}
		h.logger.WithError(err).WithField("report_id", reportID).Error("failed to process report")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to process report"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"report_id": reportID,
		"decision":  decision,
		"status":    "processed",
	})
}
