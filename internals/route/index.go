// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "weonamission_backend/internals/route/details"

	"weonamission_backend/internals/middlewares"
	authMiddleware "weonamission_backend/internals/middlewares/auth"
	featuresMiddleware "weonamission_backend/internals/middlewares/features"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// slug lookups read the handle from locals, so the DB rides on every request
	app.Use(middlewares.DBMiddleware(db))

	api := app.Group("/api")

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up auth routes...")
	routeDetails.AuthRoutes(api, db)

	// gateway webhook: no session, signature-verified in the handler
	routeDetails.WebhookRoutes(api, db)

	// ===================== GROUPS =====================

	// PUBLIC → church resolved, no session required
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public",
		featuresMiddleware.UseChurchScope(),
	)

	// USER → session + church scope
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		featuresMiddleware.UseChurchScope(),
	)

	// ADMIN → session + scope + admin-of-this-church check
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		featuresMiddleware.UseChurchScope(),
		featuresMiddleware.IsChurchAdmin(),
	)

	// OWNER → session + global superadmin, no single-church scope
	log.Println("[INFO] Setting up OWNER group...")
	owner := app.Group("/api/o",
		authMiddleware.AuthMiddleware(db),
		featuresMiddleware.IsSuperadminGlobal(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting church routes...")
	routeDetails.ChurchRoutes(public, user, admin, owner, db)

	log.Println("[INFO] Mounting user management routes...")
	routeDetails.UserRoutes(admin, db)

	log.Println("[INFO] Mounting trip routes...")
	routeDetails.TripRoutes(public, user, admin, db)

	log.Println("[INFO] Mounting community routes...")
	routeDetails.CommunityRoutes(public, user, admin, db)

	// ===================== VIEW GATES =====================
	log.Println("[INFO] Mounting view gates...")
	routeDetails.ViewRoutes(app, db)
}
