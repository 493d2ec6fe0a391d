package http

import (
	"errors"

	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/care-collective/safeguard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createExportHandler struct {
	logger   *logrus.Logger
	exporter appPrivacy.Exporter
}

func NewCreateExportHandler(
	logger *logrus.Logger,
	exporter appPrivacy.Exporter,
) Handler {
	return &createExportHandler{
		logger:   logger,
		exporter: exporter,
	}
}

// Handle queues a data export for the caller. The download token is only
// returned here, once.
func (h *createExportHandler) Handle(c *fiber.Ctx) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var req request.CreateExport
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	export, err := h.exporter.Request(c.Context(), appPrivacy.ExportCommand{
		UserID:             userID,
		RequestType:        req.RequestType,
		Format:             req.Format,
		IncludeDeletedData: req.IncludeDeletedData,
	})
	if err != nil {
		if errors.Is(err, privacy.ErrInvalidExportType) || errors.Is(err, privacy.ErrInvalidExportFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to create export request")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create export"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":              export.ID,
		"request_type":    export.RequestType,
		"export_format":   export.Format,
		"status":          export.Status,
		"download_token":  export.DownloadToken,
		"requested_at":    export.RequestedAt,
		"file_expires_at": export.FileExpiresAt,
	})
}
