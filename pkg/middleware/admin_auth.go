package middleware

import (
	"github.com/care-collective/safeguard/pkg/common"
	"github.com/care-collective/safeguard/pkg/infra/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type adminAuthMiddleware struct {
	logger *logrus.Logger
}

func NewAdminAuthMiddleware(logger *logrus.Logger) Middleware {
	return &adminAuthMiddleware{logger: logger}
}

// Middleware gates the moderation admin surface. It runs after the auth
// middleware and checks the role claim it stored.
func (m *adminAuthMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, ok := ctx.Locals(common.RoleContextKey).(string)
		if !ok || role != jwt.RoleAdmin {
			m.logger.WithField("role", role).Debug("admin access denied")
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access required"})
		}
		return ctx.Next()
	}
}
