package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"weonamission_backend/internals/constants"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
	authMiddleware "weonamission_backend/internals/middlewares/auth"
	featuresMiddleware "weonamission_backend/internals/middlewares/features"
)

// ViewRoutes mounts the role-gated view bootstraps. Each role's entry point
// answers with the session/church payload its dashboard needs; the guard
// redirects mismatched roles per the compatibility table.
func ViewRoutes(app *fiber.App, db *gorm.DB) {
	views := app.Group("",
		authMiddleware.SoftAuthMiddleware(),
		featuresMiddleware.UseChurchScope(),
	)

	// sign-in bootstrap: public, just the resolved church context
	views.Get(helperAuth.PathSignIn, func(c *fiber.Ctx) error {
		return helper.JsonSuccess(c, "OK", viewPayload(c))
	})

	views.Get(helperAuth.PathStudentView,
		featuresMiddleware.RequireView(constants.RoleStudent),
		func(c *fiber.Ctx) error {
			return helper.JsonSuccess(c, "OK", viewPayload(c))
		})

	views.Get(helperAuth.PathParentView,
		featuresMiddleware.RequireView(constants.RoleParent),
		func(c *fiber.Ctx) error {
			return helper.JsonSuccess(c, "OK", viewPayload(c))
		})

	views.Get(helperAuth.PathAdminView,
		featuresMiddleware.RequireView(constants.RoleAdmin),
		func(c *fiber.Ctx) error {
			return helper.JsonSuccess(c, "OK", viewPayload(c))
		})
}

func viewPayload(c *fiber.Ctx) fiber.Map {
	payload := fiber.Map{
		"role":      c.Locals("userRole"),
		"user_name": c.Locals("userName"),
	}
	if churchID, err := helperAuth.GetActiveChurchID(c); err == nil {
		meta := helperAuth.GetChurchMeta(c, churchID)
		payload["church_id"] = churchID
		payload["church_name"] = meta.Name
		payload["resolution_source"] = c.Locals("church_resolution_source")
	}
	return payload
}
