package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resourceController "weonamission_backend/internals/features/community/resources/controller"
)

func ResourceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := resourceController.NewResourceController(db)
	user.Get("/resources", ctrl.ListResources)
}

func ResourceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := resourceController.NewResourceController(db)
	admin.Post("/resources", ctrl.CreateResource)
	admin.Put("/resources/:id", ctrl.UpdateResource)
	admin.Delete("/resources/:id", ctrl.DeleteResource)
}
