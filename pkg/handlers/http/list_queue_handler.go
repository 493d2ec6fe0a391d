package http

import (
	appModeration "github.com/care-collective/safeguard/pkg/app/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listQueueHandler struct {
	logger *logrus.Logger
	queue  appModeration.Queue
}

func NewListQueueHandler(
	logger *logrus.Logger,
	queue appModeration.Queue,
) Handler {
	return &listQueueHandler{
		logger: logger,
		queue:  queue,
	}
}

// Handle lists pending message reports oldest first. Admin only.
func (h *listQueueHandler) Handle(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	reports, err := h.queue.ListPending(c.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list moderation queue")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list queue"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"reports": reports,
		"count":   len(reports),
	})
}
