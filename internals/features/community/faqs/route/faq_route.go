package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	faqController "weonamission_backend/internals/features/community/faqs/controller"
)

func FaqPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := faqController.NewFaqController(db)
	public.Get("/faqs", ctrl.ListFaqs)
}

func FaqAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := faqController.NewFaqController(db)
	admin.Post("/faqs", ctrl.CreateFaq)
	admin.Put("/faqs/:id", ctrl.UpdateFaq)
	admin.Delete("/faqs/:id", ctrl.DeleteFaq)
}
