package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentRoute "weonamission_backend/internals/features/trips/documents/route"
	memoryRoute "weonamission_backend/internals/features/trips/memories/route"
	paymentRoute "weonamission_backend/internals/features/trips/payments/route"
	studentRoute "weonamission_backend/internals/features/trips/students/route"
)

func TripRoutes(public, user, admin fiber.Router, db *gorm.DB) {
	studentRoute.StudentUserRoutes(user, db)

	paymentRoute.PaymentUserRoutes(user, db)
	paymentRoute.PaymentAdminRoutes(admin, db)

	documentRoute.DocumentUserRoutes(user, db)
	documentRoute.DocumentAdminRoutes(admin, db)

	memoryRoute.MemoryPublicRoutes(public, db)
	memoryRoute.MemoryUserRoutes(user, db)
	memoryRoute.MemoryAdminRoutes(admin, db)
}
