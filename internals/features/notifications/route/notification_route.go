package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "weonamission_backend/internals/features/notifications/controller"
)

func NotificationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)
	admin.Get("/notifications/pending-counts", ctrl.GetPendingCounts)
}
