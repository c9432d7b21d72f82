package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"weonamission_backend/internals/constants"
	"weonamission_backend/internals/features/trips/documents/dto"
	"weonamission_backend/internals/features/trips/documents/model"
	studentModel "weonamission_backend/internals/features/trips/students/model"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
	helperOSS "weonamission_backend/internals/helpers/oss"
)

type DocumentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db, Validate: validator.New()}
}

func contextWithUploadTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 45*time.Second)
}

/* ==========================
   Shared lookups
========================== */

func (dc *DocumentController) findScopedDocument(c *fiber.Ctx, id uuid.UUID) (*model.DocumentModel, error) {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	var doc model.DocumentModel
	if err := dc.DB.
		Where("document_id = ? AND document_church_id = ?", id, churchID).
		First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Document not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return &doc, nil
}

func (dc *DocumentController) studentOwnedBy(c *fiber.Ctx, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	var s studentModel.StudentModel
	if err := dc.DB.
		Where("student_id = ? AND student_church_id = ?", studentID, churchID).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return &s, nil
}

/* ==========================
   Upload & listing
========================== */

// POST /api/u/documents — multipart upload; file lands in OSS first, the row
// starts in pending and waits for an admin.
func (dc *DocumentController) UploadDocument(c *fiber.Ctx) error {
	var req dto.UploadDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid form fields")
	}
	if err := dc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "A file is required")
	}
	if kind := constants.DetectFileKindFromExt(fh.Filename); !constants.IsAllowedDocumentKind(kind) {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Unsupported file type")
	}

	student, serr := dc.studentOwnedBy(c, req.StudentID)
	if serr != nil {
		return serr
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if !helper.IsAdmin(c) && student.StudentParentUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only upload documents for your own students")
	}

	svc, err := helperOSS.NewOSSServiceFromEnv("")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Storage is not configured")
	}
	ctx, cancel := contextWithUploadTimeout()
	defer cancel()
	fileURL, _, err := svc.UploadFromFormFile(ctx, student.StudentChurchID, "documents", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Upload failed: "+err.Error())
	}

	doc := model.DocumentModel{
		DocumentChurchID:       student.StudentChurchID,
		DocumentStudentID:      student.StudentID,
		DocumentUploaderUserID: userID,
		DocumentFileURL:        fileURL,
		DocumentType:           req.Type,
		DocumentStatus:         constants.ModerationPending,
	}
	if err := dc.DB.Create(&doc).Error; err != nil {
		// best effort: do not strand the object
		if derr := helperOSS.DeleteByPublicURLENV(fileURL, 10*time.Second); derr != nil {
			log.Printf("[WARN] orphaned object after failed insert: %v", derr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save document")
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Document uploaded", dto.ToDocumentResponse(doc))
}

// GET /api/u/documents?student_id=&status= — own students for parents, the
// whole church for admins.
func (dc *DocumentController) ListDocuments(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}

	p := helper.ParsePage(c, "created_at", "desc")
	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "document_created_at",
		"status":     "document_status",
		"type":       "document_type",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := dc.DB.Model(&model.DocumentModel{}).Where("document_church_id = ?", churchID)
	if !helper.IsAdmin(c) {
		userID, uerr := helper.GetUserIDFromToken(c)
		if uerr != nil {
			return uerr
		}
		q = q.Where("document_student_id IN (?)",
			dc.DB.Model(&studentModel.StudentModel{}).
				Select("student_id").
				Where("student_parent_user_id = ?", userID))
	}
	if raw := c.Query("student_id"); raw != "" {
		studentID, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		q = q.Where("document_student_id = ?", studentID)
	}
	if status := c.Query("status"); status != "" {
		if !constants.IsValidModerationStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("document_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	var rows []model.DocumentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonSuccess(c, "OK", fiber.Map{
		"documents":  dto.ToDocumentResponses(rows),
		"pagination": helper.BuildPageMeta(total, p),
	})
}

/* ==========================
   Moderation (admin only by routing)
========================== */

// PUT /api/a/documents/:id/approve
func (dc *DocumentController) ApproveDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid document id")
	}
	doc, ferr := dc.findScopedDocument(c, id)
	if ferr != nil {
		return ferr
	}
	if doc.DocumentStatus != constants.ModerationPending {
		return helper.JsonError(c, fiber.StatusConflict, "Only pending documents can be approved")
	}
	doc.DocumentStatus = constants.ModerationApproved
	doc.DocumentRejectionNotes = nil
	if err := dc.DB.Save(doc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve document")
	}
	return helper.JsonSuccess(c, "Document approved", dto.ToDocumentResponse(*doc))
}

// PUT /api/a/documents/:id/reject
func (dc *DocumentController) RejectDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid document id")
	}
	var req dto.RejectDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	doc, ferr := dc.findScopedDocument(c, id)
	if ferr != nil {
		return ferr
	}
	if doc.DocumentStatus != constants.ModerationPending {
		return helper.JsonError(c, fiber.StatusConflict, "Only pending documents can be rejected")
	}
	doc.DocumentStatus = constants.ModerationRejected
	doc.DocumentRejectionNotes = &req.Notes
	if err := dc.DB.Save(doc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reject document")
	}
	return helper.JsonSuccess(c, "Document rejected", dto.ToDocumentResponse(*doc))
}

// DELETE /api/u/documents/:id — uploader or admin; removes the stored object too.
func (dc *DocumentController) DeleteDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid document id")
	}
	doc, ferr := dc.findScopedDocument(c, id)
	if ferr != nil {
		return ferr
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if !helper.IsAdmin(c) && doc.DocumentUploaderUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only delete documents you uploaded")
	}

	if err := dc.DB.Delete(doc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete document")
	}
	if err := helperOSS.DeleteByPublicURLENV(doc.DocumentFileURL, 10*time.Second); err != nil {
		log.Printf("[WARN] failed to delete stored object: %v", err)
	}
	return helper.JsonSuccess(c, "Document removed", nil)
}
