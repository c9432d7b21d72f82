package controller

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"weonamission_backend/internals/constants"
	"weonamission_backend/internals/features/trips/memories/dto"
	"weonamission_backend/internals/features/trips/memories/model"
	studentModel "weonamission_backend/internals/features/trips/students/model"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
	helperOSS "weonamission_backend/internals/helpers/oss"
)

type MemoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMemoryController(db *gorm.DB) *MemoryController {
	return &MemoryController{DB: db, Validate: validator.New()}
}

func (mc *MemoryController) findScopedMemory(c *fiber.Ctx, id uuid.UUID) (*model.TripMemoryModel, error) {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	var mem model.TripMemoryModel
	if err := mc.DB.
		Where("memory_id = ? AND memory_church_id = ?", id, churchID).
		First(&mem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Memory not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return &mem, nil
}

/* ==========================
   Submission
========================== */

// POST /api/u/memories — a student posts a trip memory, optionally with a
// photo that is normalized to WebP before it reaches storage.
func (mc *MemoryController) SubmitMemory(c *fiber.Ctx) error {
	var req dto.SubmitMemoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid form fields")
	}
	if err := mc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}

	var student studentModel.StudentModel
	if err := mc.DB.
		Where("student_id = ? AND student_church_id = ?", req.StudentID, churchID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var photoURL *string
	if fh, ferr := c.FormFile("photo"); ferr == nil && fh != nil {
		svc, oerr := helperOSS.NewOSSServiceFromEnv("")
		if oerr != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "Storage is not configured")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		url, uerr := svc.UploadImageAsWebP(ctx, churchID, "memories", fh)
		if uerr != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "Photo upload failed: "+uerr.Error())
		}
		photoURL = &url
	}

	mem := model.TripMemoryModel{
		MemoryChurchID:  churchID,
		MemoryStudentID: student.StudentID,
		MemoryTitle:     req.Title,
		MemoryContent:   req.Content,
		MemoryPhotoURL:  photoURL,
		MemoryStatus:    constants.ModerationPending,
	}
	if err := mc.DB.Create(&mem).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save memory")
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Memory submitted", dto.ToMemoryResponse(mem))
}

/* ==========================
   Reading
========================== */

// GET /api/public/memories — approved memories only, for the public wall.
func (mc *MemoryController) ListApprovedMemories(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	p := helper.ParsePage(c, "created_at", "desc")
	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "memory_created_at",
		"title":      "memory_title",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := mc.DB.Model(&model.TripMemoryModel{}).
		Where("memory_church_id = ? AND memory_status = ?", churchID, constants.ModerationApproved)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	var rows []model.TripMemoryModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonSuccess(c, "OK", fiber.Map{
		"memories":   dto.ToMemoryResponses(rows),
		"pagination": helper.BuildPageMeta(total, p),
	})
}

// GET /api/a/memories?status= — the moderation queue.
func (mc *MemoryController) ListMemoriesForModeration(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	p := helper.ParsePageWith(c, "created_at", "asc", helper.AdminOpts)
	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "memory_created_at",
		"status":     "memory_status",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	status := c.Query("status", constants.ModerationPending)
	if !constants.IsValidModerationStatus(status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
	}

	q := mc.DB.Model(&model.TripMemoryModel{}).
		Where("memory_church_id = ? AND memory_status = ?", churchID, status)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	var rows []model.TripMemoryModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonSuccess(c, "OK", fiber.Map{
		"memories":   dto.ToMemoryResponses(rows),
		"pagination": helper.BuildPageMeta(total, p),
	})
}

/* ==========================
   Moderation
========================== */

// PUT /api/a/memories/:id/approve — stamps the approver and timestamp.
func (mc *MemoryController) ApproveMemory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid memory id")
	}
	mem, ferr := mc.findScopedMemory(c, id)
	if ferr != nil {
		return ferr
	}
	if mem.MemoryStatus != constants.ModerationPending {
		return helper.JsonError(c, fiber.StatusConflict, "Only pending memories can be approved")
	}
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	mem.MemoryStatus = constants.ModerationApproved
	mem.MemoryApprovedBy = &adminID
	mem.MemoryApprovedAt = &now
	if err := mc.DB.Save(mem).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve memory")
	}
	return helper.JsonSuccess(c, "Memory approved", dto.ToMemoryResponse(*mem))
}

// PUT /api/a/memories/:id/reject
func (mc *MemoryController) RejectMemory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid memory id")
	}
	mem, ferr := mc.findScopedMemory(c, id)
	if ferr != nil {
		return ferr
	}
	if mem.MemoryStatus != constants.ModerationPending {
		return helper.JsonError(c, fiber.StatusConflict, "Only pending memories can be rejected")
	}
	mem.MemoryStatus = constants.ModerationRejected
	mem.MemoryApprovedBy = nil
	mem.MemoryApprovedAt = nil
	if err := mc.DB.Save(mem).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reject memory")
	}
	return helper.JsonSuccess(c, "Memory rejected", dto.ToMemoryResponse(*mem))
}
