package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"weonamission_backend/internals/constants"
)

// GetUserIDFromToken reads the authenticated user's ID stashed by the auth
// middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if role, ok := c.Locals("userRole").(string); ok {
		return role
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool {
	role := GetRoleFromToken(c)
	return role == constants.RoleAdmin || role == constants.RoleSuperadmin
}

func IsSuperadmin(c *fiber.Ctx) bool {
	return GetRoleFromToken(c) == constants.RoleSuperadmin
}

// GetProfileChurchID reads the user's own church from token claims.
// uuid.Nil when absent (superadmin or pre-profile token).
func GetProfileChurchID(c *fiber.Ctx) uuid.UUID {
	if raw, ok := c.Locals("church_id").(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			return id
		}
	}
	return uuid.Nil
}
