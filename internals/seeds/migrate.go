package seeds

import (
	"gorm.io/gorm"

	churchModel "weonamission_backend/internals/features/churches/churches/model"
	contentModel "weonamission_backend/internals/features/community/contents/model"
	eventModel "weonamission_backend/internals/features/community/events/model"
	faqModel "weonamission_backend/internals/features/community/faqs/model"
	questionModel "weonamission_backend/internals/features/community/questions/model"
	resourceModel "weonamission_backend/internals/features/community/resources/model"
	documentModel "weonamission_backend/internals/features/trips/documents/model"
	memoryModel "weonamission_backend/internals/features/trips/memories/model"
	paymentModel "weonamission_backend/internals/features/trips/payments/model"
	studentModel "weonamission_backend/internals/features/trips/students/model"
	authModel "weonamission_backend/internals/features/users/auth/model"
	userModel "weonamission_backend/internals/features/users/user/model"
)

// Migrate creates/updates every table. Intended for dev and first boot;
// production schema changes go through SQL migrations.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&churchModel.ChurchModel{},
		&userModel.UserModel{},
		&authModel.RefreshToken{},
		&authModel.TokenBlacklist{},
		&studentModel.StudentModel{},
		&paymentModel.PaymentModel{},
		&paymentModel.PaymentIntentModel{},
		&documentModel.DocumentModel{},
		&memoryModel.TripMemoryModel{},
		&eventModel.EventModel{},
		&resourceModel.ResourceModel{},
		&questionModel.UserQuestionModel{},
		&questionModel.QuestionResponseModel{},
		&faqModel.FaqModel{},
		&contentModel.ContentItemModel{},
	)
}
