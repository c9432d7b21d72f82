package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentController "weonamission_backend/internals/features/trips/documents/controller"
)

// DocumentUserRoutes — parents upload and track their students' paperwork.
func DocumentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := documentController.NewDocumentController(db)
	user.Post("/documents", ctrl.UploadDocument)
	user.Get("/documents", ctrl.ListDocuments)
	user.Delete("/documents/:id", ctrl.DeleteDocument)
}

// DocumentAdminRoutes — moderation transitions are admin-only.
func DocumentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := documentController.NewDocumentController(db)
	admin.Put("/documents/:id/approve", ctrl.ApproveDocument)
	admin.Put("/documents/:id/reject", ctrl.RejectDocument)
}
