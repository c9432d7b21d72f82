package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"weonamission_backend/internals/features/community/resources/dto"
	"weonamission_backend/internals/features/community/resources/model"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

type ResourceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewResourceController(db *gorm.DB) *ResourceController {
	return &ResourceController{DB: db, Validate: validator.New()}
}

func (rc *ResourceController) findScopedResource(c *fiber.Ctx, id uuid.UUID) (*model.ResourceModel, error) {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	var res model.ResourceModel
	if err := rc.DB.
		Where("resource_id = ? AND resource_church_id = ?", id, churchID).
		First(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return &res, nil
}

// GET /api/u/resources?category=
func (rc *ResourceController) ListResources(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	p := helper.ParsePage(c, "name", "asc")
	order, err := p.SafeOrderClause(map[string]string{
		"name":       "resource_name",
		"category":   "resource_category",
		"created_at": "resource_created_at",
	}, "name")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := rc.DB.Model(&model.ResourceModel{}).Where("resource_church_id = ?", churchID)
	if cat := c.Query("category"); cat != "" {
		q = q.Where("resource_category = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	var rows []model.ResourceModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonSuccess(c, "OK", fiber.Map{
		"resources":  dto.ToResourceResponses(rows),
		"pagination": helper.BuildPageMeta(total, p),
	})
}

// POST /api/a/resources
func (rc *ResourceController) CreateResource(c *fiber.Ctx) error {
	var req dto.CreateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := rc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}

	res := model.ResourceModel{
		ResourceChurchID:    churchID,
		ResourceName:        req.Name,
		ResourceDescription: req.Description,
		ResourceURL:         req.URL,
		ResourceCategory:    req.Category,
	}
	if err := rc.DB.Create(&res).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create resource")
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Resource created", dto.ToResourceResponse(res))
}

// PUT /api/a/resources/:id
func (rc *ResourceController) UpdateResource(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resource id")
	}
	res, ferr := rc.findScopedResource(c, id)
	if ferr != nil {
		return ferr
	}

	var req dto.UpdateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := rc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil {
		res.ResourceName = *req.Name
	}
	if req.Description != nil {
		res.ResourceDescription = *req.Description
	}
	if req.URL != nil {
		res.ResourceURL = *req.URL
	}
	if req.Category != nil {
		res.ResourceCategory = *req.Category
	}
	if err := rc.DB.Save(res).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update resource")
	}
	return helper.JsonSuccess(c, "Resource updated", dto.ToResourceResponse(*res))
}

// DELETE /api/a/resources/:id
func (rc *ResourceController) DeleteResource(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resource id")
	}
	res, ferr := rc.findScopedResource(c, id)
	if ferr != nil {
		return ferr
	}
	if err := rc.DB.Delete(res).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete resource")
	}
	return helper.JsonSuccess(c, "Resource removed", nil)
}
