package http

import (
	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listSharingHistoryHandler struct {
	logger *logrus.Logger
	viewer appPrivacy.HistoryViewer
}

func NewListSharingHistoryHandler(
	logger *logrus.Logger,
	viewer appPrivacy.HistoryViewer,
) Handler {
	return &listSharingHistoryHandler{
		logger: logger,
		viewer: viewer,
	}
}

// Handle lists the caller's contact sharing ledger, optionally filtered by
// status.
func (h *listSharingHistoryHandler) Handle(c *fiber.Ctx) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	filter := privacy.HistoryFilter{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}
	if raw := c.Query("status"); raw != "" {
		status := privacy.HistoryStatus(raw)
		switch status {
		case privacy.HistoryActive, privacy.HistoryRevoked, privacy.HistoryExpired, privacy.HistoryDeleted:
			filter.Status = &status
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
		}
	}

	entries, err := h.viewer.List(c.Context(), userID, filter)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to list sharing history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list history"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"history": entries,
		"count":   len(entries),
	})
}
