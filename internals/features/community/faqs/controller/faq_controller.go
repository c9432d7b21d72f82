package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"weonamission_backend/internals/features/community/faqs/dto"
	"weonamission_backend/internals/features/community/faqs/model"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

type FaqController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFaqController(db *gorm.DB) *FaqController {
	return &FaqController{DB: db, Validate: validator.New()}
}

func (fc *FaqController) findScopedFaq(c *fiber.Ctx, id uuid.UUID) (*model.FaqModel, error) {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	var faq model.FaqModel
	if err := fc.DB.
		Where("faq_id = ? AND faq_church_id = ?", id, churchID).
		First(&faq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "FAQ not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return &faq, nil
}

// GET /api/public/faqs?category= — displayed FAQs only; admins see all via
// the same handler when authenticated.
func (fc *FaqController) ListFaqs(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	p := helper.ParsePage(c, "created_at", "asc")
	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "faq_created_at",
		"category":   "faq_category",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := fc.DB.Model(&model.FaqModel{}).Where("faq_church_id = ?", churchID)
	if !helper.IsAdmin(c) {
		q = q.Where("faq_is_displayed = TRUE")
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("faq_category = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	var rows []model.FaqModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonSuccess(c, "OK", fiber.Map{
		"faqs":       dto.ToFaqResponses(rows),
		"pagination": helper.BuildPageMeta(total, p),
	})
}

// POST /api/a/faqs
func (fc *FaqController) CreateFaq(c *fiber.Ctx) error {
	var req dto.CreateFaqRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := fc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}

	displayed := true
	if req.IsDisplayed != nil {
		displayed = *req.IsDisplayed
	}
	category := req.Category
	if category == "" {
		category = "general"
	}
	faq := model.FaqModel{
		FaqChurchID:    churchID,
		FaqQuestion:    req.Question,
		FaqAnswer:      req.Answer,
		FaqCategory:    category,
		FaqIsDisplayed: displayed,
	}
	if err := fc.DB.Create(&faq).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create FAQ")
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "FAQ created", dto.ToFaqResponse(faq))
}

// PUT /api/a/faqs/:id
func (fc *FaqController) UpdateFaq(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid FAQ id")
	}
	faq, ferr := fc.findScopedFaq(c, id)
	if ferr != nil {
		return ferr
	}

	var req dto.UpdateFaqRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := fc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Question != nil {
		faq.FaqQuestion = *req.Question
	}
	if req.Answer != nil {
		faq.FaqAnswer = *req.Answer
	}
	if req.Category != nil {
		faq.FaqCategory = *req.Category
	}
	if req.IsDisplayed != nil {
		faq.FaqIsDisplayed = *req.IsDisplayed
	}
	if err := fc.DB.Save(faq).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update FAQ")
	}
	return helper.JsonSuccess(c, "FAQ updated", dto.ToFaqResponse(*faq))
}

// DELETE /api/a/faqs/:id
func (fc *FaqController) DeleteFaq(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid FAQ id")
	}
	faq, ferr := fc.findScopedFaq(c, id)
	if ferr != nil {
		return ferr
	}
	if err := fc.DB.Delete(faq).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete FAQ")
	}
	return helper.JsonSuccess(c, "FAQ removed", nil)
}
