package features

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"weonamission_backend/internals/constants"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

// IsChurchAdmin allows admins of the resolved church (and superadmin
// anywhere). Admins may only act inside their own church scope.
func IsChurchAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if role == constants.RoleSuperadmin {
			return c.Next()
		}
		if role != constants.RoleAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("this area"))
		}

		activeID, err := helperAuth.GetActiveChurchID(c)
		if err != nil {
			return err
		}
		own := helper.GetProfileChurchID(c)
		if own == uuid.Nil || own != activeID {
			return helper.JsonError(c, fiber.StatusForbidden, "Admins can only manage their own church")
		}
		return c.Next()
	}
}

// IsSuperadminGlobal allows the global superadmin only.
func IsSuperadminGlobal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.IsSuperadmin(c) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorSuperadmin("this area"))
		}
		return c.Next()
	}
}
