package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type StudentModel struct {
	StudentID           uuid.UUID      `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentChurchID     uuid.UUID      `gorm:"column:student_church_id;type:uuid;not null;index" json:"student_church_id"`
	StudentParentUserID uuid.UUID      `gorm:"column:student_parent_user_id;type:uuid;not null;index" json:"student_parent_user_id"`
	StudentName         string         `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentGrade        string         `gorm:"column:student_grade;type:varchar(30)" json:"student_grade"`
	StudentAllergies    pq.StringArray `gorm:"column:student_allergies;type:text[]" json:"student_allergies"`
	StudentMedications  string         `gorm:"column:student_medications;type:text" json:"student_medications"`
	StudentConditions   string         `gorm:"column:student_conditions;type:text" json:"student_conditions"`

	// {"name": "...", "phone": "...", "relation": "..."}
	StudentEmergencyContact datatypes.JSONMap `gorm:"column:student_emergency_contact;type:jsonb" json:"student_emergency_contact"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

// Students are removed for real when a family leaves, so no soft delete here.
func (StudentModel) TableName() string {
	return "students"
}
