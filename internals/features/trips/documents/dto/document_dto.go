package dto

import (
	"time"

	"github.com/google/uuid"

	"weonamission_backend/internals/features/trips/documents/model"
)

/* ==========================
   Requests
========================== */

// UploadDocumentRequest rides alongside the multipart "file" field.
type UploadDocumentRequest struct {
	StudentID uuid.UUID `form:"student_id" validate:"required"`
	Type      string    `form:"type" validate:"required,oneof=waiver medical passport permission insurance other"`
}

type RejectDocumentRequest struct {
	Notes string `json:"notes" validate:"required,min=3,max=2000"`
}

/* ==========================
   Responses
========================== */

type DocumentResponse struct {
	DocumentID     uuid.UUID `json:"document_id"`
	ChurchID       uuid.UUID `json:"church_id"`
	StudentID      uuid.UUID `json:"student_id"`
	UploaderUserID uuid.UUID `json:"uploader_user_id"`
	FileURL        string    `json:"file_url"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	RejectionNotes *string   `json:"rejection_notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToDocumentResponse(m model.DocumentModel) DocumentResponse {
	return DocumentResponse{
		DocumentID:     m.DocumentID,
		ChurchID:       m.DocumentChurchID,
		StudentID:      m.DocumentStudentID,
		UploaderUserID: m.DocumentUploaderUserID,
		FileURL:        m.DocumentFileURL,
		Type:           m.DocumentType,
		Status:         m.DocumentStatus,
		RejectionNotes: m.DocumentRejectionNotes,
		CreatedAt:      m.DocumentCreatedAt,
	}
}

func ToDocumentResponses(list []model.DocumentModel) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToDocumentResponse(m))
	}
	return out
}
