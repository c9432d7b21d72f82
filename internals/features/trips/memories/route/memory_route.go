package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"weonamission_backend/internals/constants"
	memoryController "weonamission_backend/internals/features/trips/memories/controller"
	authMiddleware "weonamission_backend/internals/middlewares/auth"
)

// MemoryPublicRoutes — the approved memory wall.
func MemoryPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := memoryController.NewMemoryController(db)
	public.Get("/memories", ctrl.ListApprovedMemories)
}

// MemoryUserRoutes — submission is a student action.
func MemoryUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := memoryController.NewMemoryController(db)
	user.Post("/memories",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("submit trip memories"), constants.RoleStudent),
		ctrl.SubmitMemory)
}

// MemoryAdminRoutes — moderation queue and transitions.
func MemoryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := memoryController.NewMemoryController(db)
	admin.Get("/memories", ctrl.ListMemoriesForModeration)
	admin.Put("/memories/:id/approve", ctrl.ApproveMemory)
	admin.Put("/memories/:id/reject", ctrl.RejectMemory)
}
