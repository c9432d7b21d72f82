package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"weonamission_backend/internals/features/churches/churches/controller"
)

func ChurchPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChurchController(db)

	church := public.Group("/churches")
	church.Get("/by-slug/:slug", ctrl.GetChurchBySlug)
}

func ChurchUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChurchController(db)

	church := user.Group("/churches")
	church.Get("/current", ctrl.GetCurrentChurch)
}

func ChurchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChurchController(db)

	church := admin.Group("/churches")
	church.Put("/", ctrl.UpdateChurch)
}

func ChurchOwnerRoutes(owner fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChurchController(db)

	church := owner.Group("/churches")
	church.Get("/", ctrl.ListChurches)
	church.Post("/", ctrl.CreateChurch)
	church.Delete("/:id", ctrl.DeactivateChurch)
}
