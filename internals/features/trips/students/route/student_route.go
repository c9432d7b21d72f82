package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "weonamission_backend/internals/features/trips/students/controller"
)

// StudentUserRoutes — parents manage their own children; admins see all
// through the same handlers (the controller widens the scope by role).
func StudentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)
	user.Post("/students", ctrl.CreateStudent)
	user.Get("/students", ctrl.ListStudents)
	user.Get("/students/:id", ctrl.GetStudent)
	user.Put("/students/:id", ctrl.UpdateStudent)
	user.Delete("/students/:id", ctrl.DeleteStudent)
}
