package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "weonamission_backend/internals/features/trips/payments/controller"
)

// PaymentUserRoutes — ledgers, totals and hosted checkout for parents.
func PaymentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)
	user.Get("/payments", ctrl.ListPayments)
	user.Get("/payments/totals/:student_id", ctrl.GetStudentTotals)
	user.Post("/payments/checkout", ctrl.CreateCheckout)
}

// PaymentAdminRoutes — offline payment entry and church-wide totals.
func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)
	admin.Post("/payments", ctrl.CreatePayment)
	admin.Get("/payments/totals", ctrl.GetChurchTotals)
}

// PaymentWebhookRoutes — the gateway callback, mounted outside the auth
// groups; signature verification is done in the handler.
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)
	api.Post("/payments/notification", ctrl.HandleNotification)
}
