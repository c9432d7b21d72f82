package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	churchRoute "weonamission_backend/internals/features/churches/churches/route"
	userRoute "weonamission_backend/internals/features/users/user/route"
)

func ChurchRoutes(public, user, admin, owner fiber.Router, db *gorm.DB) {
	churchRoute.ChurchPublicRoutes(public, db)
	churchRoute.ChurchUserRoutes(user, db)
	churchRoute.ChurchAdminRoutes(admin, db)
	churchRoute.ChurchOwnerRoutes(owner, db)
}

func UserRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(admin, db)
}
