package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"weonamission_backend/internals/features/community/contents/dto"
	"weonamission_backend/internals/features/community/contents/model"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

type ContentItemController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewContentItemController(db *gorm.DB) *ContentItemController {
	return &ContentItemController{DB: db, Validate: validator.New()}
}

func (cc *ContentItemController) findScopedItem(c *fiber.Ctx, id uuid.UUID) (*model.ContentItemModel, error) {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	var item model.ContentItemModel
	if err := cc.DB.
		Where("content_id = ? AND content_church_id = ?", id, churchID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Content item not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return &item, nil
}

// GET /api/public/contents?section= — ordered blocks; hidden items are
// admin-only.
func (cc *ContentItemController) ListContentItems(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}

	q := cc.DB.Model(&model.ContentItemModel{}).Where("content_church_id = ?", churchID)
	if !helper.IsAdmin(c) {
		q = q.Where("content_is_displayed = TRUE")
	}
	if section := c.Query("section"); section != "" {
		q = q.Where("content_section = ?", section)
	}

	var rows []model.ContentItemModel
	if err := q.Order("content_section ASC, content_order_index ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonSuccess(c, "OK", dto.ToContentItemResponses(rows))
}

// POST /api/a/contents
func (cc *ContentItemController) CreateContentItem(c *fiber.Ctx) error {
	var req dto.CreateContentItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(req); err != nil {
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
	item := model.ContentItemModel{
		ContentChurchID:    churchID,
		ContentSection:     req.Section,
		ContentTitle:       req.Title,
		ContentBody:        req.Body,
		ContentOrderIndex:  req.OrderIndex,
		ContentIsDisplayed: displayed,
	}
	if err := cc.DB.Create(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create content item")
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Content item created", dto.ToContentItemResponse(item))
}

// PUT /api/a/contents/:id
func (cc *ContentItemController) UpdateContentItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid content id")
	}
	item, ferr := cc.findScopedItem(c, id)
	if ferr != nil {
		return ferr
	}

	var req dto.UpdateContentItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Section != nil {
		item.ContentSection = *req.Section
	}
	if req.Title != nil {
		item.ContentTitle = *req.Title
	}
	if req.Body != nil {
		item.ContentBody = *req.Body
	}
	if req.OrderIndex != nil {
		item.ContentOrderIndex = *req.OrderIndex
	}
	if req.IsDisplayed != nil {
		item.ContentIsDisplayed = *req.IsDisplayed
	}
	if err := cc.DB.Save(item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update content item")
	}
	return helper.JsonSuccess(c, "Content item updated", dto.ToContentItemResponse(*item))
}

// DELETE /api/a/contents/:id
func (cc *ContentItemController) DeleteContentItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid content id")
	}
	item, ferr := cc.findScopedItem(c, id)
	if ferr != nil {
		return ferr
	}
	if err := cc.DB.Delete(item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete content item")
	}
	return helper.JsonSuccess(c, "Content item removed", nil)
}
