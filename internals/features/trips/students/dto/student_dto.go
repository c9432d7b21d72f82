package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"weonamission_backend/internals/features/trips/students/model"
)

/* ==========================
   Requests
========================== */

type CreateStudentRequest struct {
	Name             string            `json:"name" validate:"required,min=2,max=100"`
	Grade            string            `json:"grade" validate:"omitempty,max=30"`
	Allergies        []string          `json:"allergies" validate:"omitempty,dive,max=80"`
	Medications      string            `json:"medications" validate:"omitempty,max=2000"`
	Conditions       string            `json:"conditions" validate:"omitempty,max=2000"`
	EmergencyContact map[string]any    `json:"emergency_contact"`
	ParentUserID     *uuid.UUID        `json:"parent_user_id"` // admins may register on behalf of a parent
}

type UpdateStudentRequest struct {
	Name             *string        `json:"name" validate:"omitempty,min=2,max=100"`
	Grade            *string        `json:"grade" validate:"omitempty,max=30"`
	Allergies        *[]string      `json:"allergies" validate:"omitempty,dive,max=80"`
	Medications      *string        `json:"medications" validate:"omitempty,max=2000"`
	Conditions       *string        `json:"conditions" validate:"omitempty,max=2000"`
	EmergencyContact map[string]any `json:"emergency_contact"`
}

/* ==========================
   Responses
========================== */

type StudentResponse struct {
	StudentID        uuid.UUID         `json:"student_id"`
	ChurchID         uuid.UUID         `json:"church_id"`
	ParentUserID     uuid.UUID         `json:"parent_user_id"`
	Name             string            `json:"name"`
	Grade            string            `json:"grade"`
	Allergies        []string          `json:"allergies"`
	Medications      string            `json:"medications"`
	Conditions       string            `json:"conditions"`
	EmergencyContact datatypes.JSONMap `json:"emergency_contact"`
	CreatedAt        time.Time         `json:"created_at"`
}

func ToStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:        m.StudentID,
		ChurchID:         m.StudentChurchID,
		ParentUserID:     m.StudentParentUserID,
		Name:             m.StudentName,
		Grade:            m.StudentGrade,
		Allergies:        m.StudentAllergies,
		Medications:      m.StudentMedications,
		Conditions:       m.StudentConditions,
		EmergencyContact: m.StudentEmergencyContact,
		CreatedAt:        m.StudentCreatedAt,
	}
}

func ToStudentResponses(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentResponse(m))
	}
	return out
}
