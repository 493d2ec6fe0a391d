package http

import (
	"errors"

	"github.com/care-collective/safeguard/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errNoAuthenticatedUser = errors.New("no authenticated user in request context")

// authenticatedUser returns the caller's id stored by the auth middleware.
func authenticatedUser(ctx *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := ctx.Locals(common.UserIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errNoAuthenticatedUser
	}
	return userID, nil
}
