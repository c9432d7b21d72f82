package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	faqModel "weonamission_backend/internals/features/community/faqs/model"
	"weonamission_backend/internals/features/community/questions/dto"
	"weonamission_backend/internals/features/community/questions/model"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

type QuestionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db, Validate: validator.New()}
}

func (qc *QuestionController) findScopedQuestion(c *fiber.Ctx, id uuid.UUID) (*model.UserQuestionModel, error) {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	var q model.UserQuestionModel
	if err := qc.DB.
		Where("question_id = ? AND question_church_id = ?", id, churchID).
		First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return &q, nil
}

/* ==========================
   Asking & reading
========================== */

// POST /api/u/questions
func (qc *QuestionController) SubmitQuestion(c *fiber.Ctx) error {
	var req dto.SubmitQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := qc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := model.UserQuestionModel{
		QuestionChurchID: churchID,
		QuestionUserID:   userID,
		QuestionText:     req.Text,
		QuestionStatus:   model.QuestionStatusSubmitted,
	}
	if err := qc.DB.Create(&q).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit question")
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Question submitted", dto.ToQuestionView(q, nil))
}

// GET /api/u/questions — own questions for regular users, all for admins.
func (qc *QuestionController) ListQuestions(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	p := helper.ParsePage(c, "created_at", "desc")
	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "question_created_at",
		"status":     "question_status",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := qc.DB.Model(&model.UserQuestionModel{}).Where("question_church_id = ?", churchID)
	if !helper.IsAdmin(c) {
		userID, uerr := helper.GetUserIDFromToken(c)
		if uerr != nil {
			return uerr
		}
		q = q.Where("question_user_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("question_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	var rows []model.UserQuestionModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonSuccess(c, "OK", fiber.Map{
		"questions":  dto.ToQuestionViews(rows),
		"pagination": helper.BuildPageMeta(total, p),
	})
}

// GET /api/u/questions/:id — includes responses.
func (qc *QuestionController) GetQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	q, ferr := qc.findScopedQuestion(c, id)
	if ferr != nil {
		return ferr
	}
	if !helper.IsAdmin(c) {
		userID, uerr := helper.GetUserIDFromToken(c)
		if uerr != nil {
			return uerr
		}
		if q.QuestionUserID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own questions")
		}
	}

	var responses []model.QuestionResponseModel
	if err := qc.DB.
		Where("response_question_id = ?", q.QuestionID).
		Order("response_created_at ASC").
		Find(&responses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonSuccess(c, "OK", dto.ToQuestionView(*q, responses))
}

/* ==========================
   Admin workflow
========================== */

// PUT /api/a/questions/:id/claim — submitted -> pending.
func (qc *QuestionController) ClaimQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	q, ferr := qc.findScopedQuestion(c, id)
	if ferr != nil {
		return ferr
	}
	if q.QuestionStatus != model.QuestionStatusSubmitted {
		return helper.JsonError(c, fiber.StatusConflict, "Only submitted questions can be claimed")
	}
	q.QuestionStatus = model.QuestionStatusPending
	if err := qc.DB.Save(q).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}
	return helper.JsonSuccess(c, "Question claimed", dto.ToQuestionView(*q, nil))
}

// POST /api/a/questions/:id/respond — records the answer, completes the
// question, and (when is_faq is set) mints the FAQ in the same transaction.
func (qc *QuestionController) RespondQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	var req dto.RespondQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := qc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	q, ferr := qc.findScopedQuestion(c, id)
	if ferr != nil {
		return ferr
	}
	if q.QuestionStatus == model.QuestionStatusComplete {
		return helper.JsonError(c, fiber.StatusConflict, "Question is already complete")
	}
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	response := model.QuestionResponseModel{
		ResponseQuestionID: q.QuestionID,
		ResponseAdminID:    adminID,
		ResponseText:       req.Text,
		ResponseIsFaq:      req.IsFaq,
	}

	err = qc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&response).Error; err != nil {
			return err
		}
		if req.IsFaq {
			category := req.FaqCategory
			if category == "" {
				category = "general"
			}
			faq := faqModel.FaqModel{
				FaqChurchID:    q.QuestionChurchID,
				FaqQuestion:    q.QuestionText,
				FaqAnswer:      req.Text,
				FaqCategory:    category,
				FaqIsDisplayed: true,
			}
			if err := tx.Create(&faq).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.UserQuestionModel{}).
			Where("question_id = ?", q.QuestionID).
			Update("question_status", model.QuestionStatusComplete).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record response")
	}

	q.QuestionStatus = model.QuestionStatusComplete
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Response recorded",
		dto.ToQuestionView(*q, []model.QuestionResponseModel{response}))
}
