package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"weonamission_backend/internals/features/churches/churches/dto"
	"weonamission_backend/internals/features/churches/churches/model"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

type ChurchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewChurchController(db *gorm.DB) *ChurchController {
	return &ChurchController{DB: db, Validate: validator.New()}
}

// 🟢 CREATE CHURCH — POST /api/o/churches (superadmin)
func (cc *ChurchController) CreateChurch(c *fiber.Ctx) error {
	var req dto.ChurchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	base := helper.GenerateSlug(req.ChurchSlug)
	if base == "" {
		base = helper.GenerateSlug(req.ChurchName)
	}
	if base == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church name does not produce a valid slug")
	}
	slug, err := helper.EnsureUniqueSlug(cc.DB, base, "churches", "church_slug")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to allocate slug")
	}

	church := model.ChurchModel{
		ChurchName:            strings.TrimSpace(req.ChurchName),
		ChurchSlug:            slug,
		ChurchTripDestination: strings.TrimSpace(req.ChurchTripDestination),
		ChurchTripStartDate:   req.ChurchTripStartDate,
		ChurchTripEndDate:     req.ChurchTripEndDate,
		ChurchTripCost:        req.ChurchTripCost,
		ChurchSettings:        req.ChurchSettings,
		ChurchIsActive:        true,
	}
	if err := cc.DB.Create(&church).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create church")
	}

	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Church created", dto.ToChurchResponse(church))
}

// 🟢 UPDATE CHURCH (partial) — PUT /api/a/churches
// Admins mutate their own (resolved) church; superadmin may pass ?church=...
func (cc *ChurchController) UpdateChurch(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}

	var existing model.ChurchModel
	if err := cc.DB.First(&existing, "church_id = ?", churchID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Church not found")
	}

	var req dto.ChurchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if v := strings.TrimSpace(req.ChurchName); v != "" {
		existing.ChurchName = v
	}
	if v := strings.TrimSpace(req.ChurchSlug); v != "" {
		base := helper.GenerateSlug(v)
		if base != "" && base != existing.ChurchSlug {
			newSlug, err := helper.EnsureUniqueSlug(cc.DB, base, "churches", "church_slug")
			if err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to allocate slug")
			}
			existing.ChurchSlug = newSlug
		}
	}
	if v := strings.TrimSpace(req.ChurchTripDestination); v != "" {
		existing.ChurchTripDestination = v
	}
	if req.ChurchTripStartDate != nil {
		existing.ChurchTripStartDate = req.ChurchTripStartDate
	}
	if req.ChurchTripEndDate != nil {
		existing.ChurchTripEndDate = req.ChurchTripEndDate
	}
	if req.ChurchTripCost > 0 {
		existing.ChurchTripCost = req.ChurchTripCost
	}
	if req.ChurchSettings != nil {
		existing.ChurchSettings = req.ChurchSettings
	}
	// active flag flips only through the superadmin surface
	if req.ChurchIsActive != nil && helper.IsSuperadmin(c) {
		existing.ChurchIsActive = *req.ChurchIsActive
	}

	if err := cc.DB.Save(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update church")
	}
	return helper.JsonSuccess(c, "Church updated", dto.ToChurchResponse(existing))
}

// 🟡 DEACTIVATE — DELETE /api/o/churches/:id (superadmin, soft only)
func (cc *ChurchController) DeactivateChurch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid church id")
	}

	res := cc.DB.Model(&model.ChurchModel{}).
		Where("church_id = ?", id).
		Update("church_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate church")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Church not found")
	}
	return helper.JsonSuccess(c, "Church deactivated", nil)
}

// 🔵 LIST — GET /api/o/churches (superadmin)
func (cc *ChurchController) ListChurches(c *fiber.Ctx) error {
	p := helper.ParsePageWith(c, "created_at", "desc", helper.AdminOpts)
	order, _ := p.SafeOrderClause(map[string]string{
		"created_at": "church_created_at",
		"name":       "church_name",
	}, "created_at")

	var total int64
	if err := cc.DB.Model(&model.ChurchModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count churches")
	}

	var churches []model.ChurchModel
	if err := cc.DB.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&churches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch churches")
	}

	return helper.JsonSuccess(c, "OK", fiber.Map{
		"items": dto.ToChurchResponses(churches),
		"meta":  helper.BuildPageMeta(total, p),
	})
}

// 🔵 PUBLIC LOOKUP — GET /api/public/churches/by-slug/:slug
// Used by clients to resolve a selector before sign-in; inactive churches
// resolve like unknown slugs.
func (cc *ChurchController) GetChurchBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug is required")
	}

	var church model.ChurchModel
	err := cc.DB.
		Where("LOWER(church_slug) = LOWER(?) AND church_is_active = TRUE", slug).
		First(&church).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Church not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lookup failed")
	}

	return helper.JsonSuccess(c, "OK", dto.ToChurchResponse(church))
}

// 🔵 ACTIVE CONTEXT — GET /api/u/churches/current
// Returns the resolved church + resolution diagnostics for the session.
func (cc *ChurchController) GetCurrentChurch(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}

	meta := helperAuth.GetChurchMeta(c, churchID)
	source, _ := c.Locals("church_resolution_source").(string)
	fallback, _ := c.Locals("church_resolution_fallback").(bool)

	return helper.JsonSuccess(c, "OK", fiber.Map{
		"church_id":           churchID.String(),
		"church":              meta,
		"resolution_source":   source,
		"resolution_fallback": fallback,
	})
}
