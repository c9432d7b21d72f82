package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "weonamission_backend/internals/features/users/user/controller"
)

// UserAdminRoutes — church admins manage the membership of their own church.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)
	admin.Get("/users", ctrl.ListUsers)
	admin.Put("/users/:id/role", ctrl.UpdateUserRole)
	admin.Delete("/users/:id", ctrl.DeactivateUser)
}
