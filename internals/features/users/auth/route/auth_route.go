package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "weonamission_backend/internals/features/users/auth/controller"
	"weonamission_backend/internals/middlewares"
	authMiddleware "weonamission_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the credential endpoints under /api/auth.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")

	// public, rate limited
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)

	// requires a live session
	protected := auth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Get("/me", ctrl.Me)
	protected.Post("/change-password", ctrl.ChangePassword)
}
