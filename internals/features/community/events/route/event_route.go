package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "weonamission_backend/internals/features/community/events/controller"
)

// EventUserRoutes — calendar reads for every signed-in role.
func EventUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)
	user.Get("/events", ctrl.ListEvents)
	user.Get("/events/:id", ctrl.GetEvent)
}

// EventAdminRoutes — schedule management.
func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)
	admin.Post("/events", ctrl.CreateEvent)
	admin.Put("/events/:id", ctrl.UpdateEvent)
	admin.Delete("/events/:id", ctrl.DeleteEvent)
}
