package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentController "weonamission_backend/internals/features/community/contents/controller"
)

func ContentPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := contentController.NewContentItemController(db)
	public.Get("/contents", ctrl.ListContentItems)
}

func ContentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := contentController.NewContentItemController(db)
	admin.Post("/contents", ctrl.CreateContentItem)
	admin.Put("/contents/:id", ctrl.UpdateContentItem)
	admin.Delete("/contents/:id", ctrl.DeleteContentItem)
}
