package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"weonamission_backend/internals/features/trips/students/dto"
	"weonamission_backend/internals/features/trips/students/model"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

/* ==========================
   Shared lookups
========================== */

// findScopedStudent loads one student inside the active church or 404s.
func (sc *StudentController) findScopedStudent(c *fiber.Ctx, id uuid.UUID) (*model.StudentModel, error) {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	var student model.StudentModel
	if err := sc.DB.
		Where("student_id = ? AND student_church_id = ?", id, churchID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return &student, nil
}

// canTouchStudent: owning parent or any church admin.
func canTouchStudent(c *fiber.Ctx, s *model.StudentModel) bool {
	if helper.IsAdmin(c) {
		return true
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return false
	}
	return s.StudentParentUserID == userID
}

/* ==========================
   Handlers
========================== */

// POST /api/u/students
func (sc *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := sc.Validate.Struct(req); err != nil {
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

	parentID := userID
	if req.ParentUserID != nil {
		if !helper.IsAdmin(c) {
			return helper.JsonError(c, fiber.StatusForbidden, "Only admins may register a student for another parent")
		}
		parentID = *req.ParentUserID
	}

	student := model.StudentModel{
		StudentChurchID:         churchID,
		StudentParentUserID:     parentID,
		StudentName:             req.Name,
		StudentGrade:            req.Grade,
		StudentAllergies:        req.Allergies,
		StudentMedications:      req.Medications,
		StudentConditions:       req.Conditions,
		StudentEmergencyContact: datatypes.JSONMap(req.EmergencyContact),
	}
	if err := sc.DB.Create(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Student registered", dto.ToStudentResponse(student))
}

// GET /api/u/students — the caller's own children; admins see the whole church.
func (sc *StudentController) ListStudents(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}

	p := helper.ParsePage(c, "created_at", "desc")
	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "student_created_at",
		"name":       "student_name",
		"grade":      "student_grade",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := sc.DB.Model(&model.StudentModel{}).Where("student_church_id = ?", churchID)
	if !helper.IsAdmin(c) {
		userID, uerr := helper.GetUserIDFromToken(c)
		if uerr != nil {
			return uerr
		}
		q = q.Where("student_parent_user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	var rows []model.StudentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonSuccess(c, "OK", fiber.Map{
		"students":   dto.ToStudentResponses(rows),
		"pagination": helper.BuildPageMeta(total, p),
	})
}

// GET /api/u/students/:id
func (sc *StudentController) GetStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	student, ferr := sc.findScopedStudent(c, id)
	if ferr != nil {
		return ferr
	}
	if !canTouchStudent(c, student) {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own students")
	}
	return helper.JsonSuccess(c, "OK", dto.ToStudentResponse(*student))
}

// PUT /api/u/students/:id
func (sc *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	student, ferr := sc.findScopedStudent(c, id)
	if ferr != nil {
		return ferr
	}
	if !canTouchStudent(c, student) {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only update your own students")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := sc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil {
		student.StudentName = *req.Name
	}
	if req.Grade != nil {
		student.StudentGrade = *req.Grade
	}
	if req.Allergies != nil {
		student.StudentAllergies = *req.Allergies
	}
	if req.Medications != nil {
		student.StudentMedications = *req.Medications
	}
	if req.Conditions != nil {
		student.StudentConditions = *req.Conditions
	}
	if req.EmergencyContact != nil {
		student.StudentEmergencyContact = datatypes.JSONMap(req.EmergencyContact)
	}

	if err := sc.DB.Save(student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonSuccess(c, "Student updated", dto.ToStudentResponse(*student))
}

// DELETE /api/u/students/:id — hard delete.
func (sc *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	student, ferr := sc.findScopedStudent(c, id)
	if ferr != nil {
		return ferr
	}
	if !canTouchStudent(c, student) {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only remove your own students")
	}
	if err := sc.DB.Delete(student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.JsonSuccess(c, "Student removed", nil)
}
