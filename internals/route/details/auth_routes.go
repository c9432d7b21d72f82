package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "weonamission_backend/internals/features/trips/payments/route"
	authRoute "weonamission_backend/internals/features/users/auth/route"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(api, db)
}

func WebhookRoutes(api fiber.Router, db *gorm.DB) {
	paymentRoute.PaymentWebhookRoutes(api, db)
}
