package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"weonamission_backend/internals/constants"
	"weonamission_backend/internals/features/users/user/dto"
	"weonamission_backend/internals/features/users/user/model"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// 🔵 LIST USERS — GET /api/a/users (admins see their church only)
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}

	p := helper.ParsePageWith(c, "created_at", "desc", helper.AdminOpts)
	order, _ := p.SafeOrderClause(map[string]string{
		"created_at": "created_at",
		"name":       "user_name",
		"email":      "email",
	}, "created_at")

	q := uc.DB.Model(&model.UserModel{}).Where("church_id = ?", churchID)
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonSuccess(c, "OK", fiber.Map{
		"items": dto.ToUserResponses(users),
		"meta":  helper.BuildPageMeta(total, p),
	})
}

// 🟢 UPDATE ROLE — PUT /api/a/users/:id/role
// Role changes only flow through here (admin) or the superadmin surface; a
// user can never promote themselves.
func (uc *UserController) UpdateUserRole(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if actorID == targetID {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot change your own role")
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := uc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// only the superadmin can mint admins or superadmins
	if (req.Role == constants.RoleAdmin || req.Role == constants.RoleSuperadmin) && !helper.IsSuperadmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorSuperadmin("role promotion"))
	}

	var target model.UserModel
	if err := uc.DB.First(&target, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	// church admins may only touch users in their own church
	if !helper.IsSuperadmin(c) {
		churchID, err := helperAuth.GetActiveChurchID(c)
		if err != nil {
			return err
		}
		if target.ChurchID == nil || *target.ChurchID != churchID {
			return helper.JsonError(c, fiber.StatusForbidden, "User belongs to another church")
		}
	}

	target.Role = req.Role
	if req.ChurchID != nil && helper.IsSuperadmin(c) {
		target.ChurchID = req.ChurchID
	}
	if err := target.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := uc.DB.Save(&target).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}

	return helper.JsonSuccess(c, "Role updated", dto.ToUserResponse(target))
}

// 🟡 DEACTIVATE USER — DELETE /api/a/users/:id
func (uc *UserController) DeactivateUser(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	q := uc.DB.Model(&model.UserModel{}).Where("id = ?", targetID)
	if !helper.IsSuperadmin(c) {
		churchID, err := helperAuth.GetActiveChurchID(c)
		if err != nil {
			return err
		}
		q = q.Where("church_id = ?", churchID)
	}

	res := q.Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonSuccess(c, "User deactivated", nil)
}
