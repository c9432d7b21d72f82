package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentRoute "weonamission_backend/internals/features/community/contents/route"
	eventRoute "weonamission_backend/internals/features/community/events/route"
	faqRoute "weonamission_backend/internals/features/community/faqs/route"
	questionRoute "weonamission_backend/internals/features/community/questions/route"
	resourceRoute "weonamission_backend/internals/features/community/resources/route"
	notificationRoute "weonamission_backend/internals/features/notifications/route"
)

func CommunityRoutes(public, user, admin fiber.Router, db *gorm.DB) {
	eventRoute.EventUserRoutes(user, db)
	eventRoute.EventAdminRoutes(admin, db)

	resourceRoute.ResourceUserRoutes(user, db)
	resourceRoute.ResourceAdminRoutes(admin, db)

	questionRoute.QuestionUserRoutes(user, db)
	questionRoute.QuestionAdminRoutes(admin, db)

	faqRoute.FaqPublicRoutes(public, db)
	faqRoute.FaqAdminRoutes(admin, db)

	contentRoute.ContentPublicRoutes(public, db)
	contentRoute.ContentAdminRoutes(admin, db)

	notificationRoute.NotificationAdminRoutes(admin, db)
}
