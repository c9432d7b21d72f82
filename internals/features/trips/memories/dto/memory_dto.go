package dto

import (
	"time"

	"github.com/google/uuid"

	"weonamission_backend/internals/features/trips/memories/model"
)

/* ==========================
   Requests
========================== */

// SubmitMemoryRequest rides alongside an optional multipart "photo" field.
type SubmitMemoryRequest struct {
	StudentID uuid.UUID `form:"student_id" validate:"required"`
	Title     string    `form:"title" validate:"required,min=3,max=150"`
	Content   string    `form:"content" validate:"required,min=10"`
}

/* ==========================
   Responses
========================== */

type MemoryResponse struct {
	MemoryID   uuid.UUID  `json:"memory_id"`
	ChurchID   uuid.UUID  `json:"church_id"`
	StudentID  uuid.UUID  `json:"student_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	PhotoURL   *string    `json:"photo_url,omitempty"`
	Status     string     `json:"status"`
	ApprovedBy *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToMemoryResponse(m model.TripMemoryModel) MemoryResponse {
	return MemoryResponse{
		MemoryID:   m.MemoryID,
		ChurchID:   m.MemoryChurchID,
		StudentID:  m.MemoryStudentID,
		Title:      m.MemoryTitle,
		Content:    m.MemoryContent,
		PhotoURL:   m.MemoryPhotoURL,
		Status:     m.MemoryStatus,
		ApprovedBy: m.MemoryApprovedBy,
		ApprovedAt: m.MemoryApprovedAt,
		CreatedAt:  m.MemoryCreatedAt,
	}
}

func ToMemoryResponses(list []model.TripMemoryModel) []MemoryResponse {
	out := make([]MemoryResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMemoryResponse(m))
	}
	return out
}
