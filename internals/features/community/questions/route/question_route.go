package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "weonamission_backend/internals/features/community/questions/controller"
)

// QuestionUserRoutes — any signed-in user can ask and track their questions.
func QuestionUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := questionController.NewQuestionController(db)
	user.Post("/questions", ctrl.SubmitQuestion)
	user.Get("/questions", ctrl.ListQuestions)
	user.Get("/questions/:id", ctrl.GetQuestion)
}

// QuestionAdminRoutes — the answer desk.
func QuestionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := questionController.NewQuestionController(db)
	admin.Put("/questions/:id/claim", ctrl.ClaimQuestion)
	admin.Post("/questions/:id/respond", ctrl.RespondQuestion)
}
