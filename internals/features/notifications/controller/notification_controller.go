package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"weonamission_backend/internals/features/notifications/scheduler"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/a/notifications/pending-counts — reads the refresher's cached
// snapshot; it never hits the moderation tables directly.
func (nc *NotificationController) GetPendingCounts(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	return helper.JsonSuccess(c, "OK", scheduler.Snapshot(churchID))
}
