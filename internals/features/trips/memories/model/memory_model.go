package model

import (
	"time"

	"github.com/google/uuid"
)

type TripMemoryModel struct {
	MemoryID        uuid.UUID `gorm:"column:memory_id;type:uuid;default:gen_random_uuid();primaryKey" json:"memory_id"`
	MemoryChurchID  uuid.UUID `gorm:"column:memory_church_id;type:uuid;not null;index" json:"memory_church_id"`
	MemoryStudentID uuid.UUID `gorm:"column:memory_student_id;type:uuid;not null;index" json:"memory_student_id"`

	MemoryTitle    string  `gorm:"column:memory_title;type:varchar(150);not null" json:"memory_title"`
	MemoryContent  string  `gorm:"column:memory_content;type:text;not null" json:"memory_content"`
	MemoryPhotoURL *string `gorm:"column:memory_photo_url;type:text" json:"memory_photo_url,omitempty"`

	// pending -> approved | rejected; approver is stamped on approval
	MemoryStatus     string     `gorm:"column:memory_status;type:varchar(20);not null;default:'pending';index" json:"memory_status"`
	MemoryApprovedBy *uuid.UUID `gorm:"column:memory_approved_by;type:uuid" json:"memory_approved_by,omitempty"`
	MemoryApprovedAt *time.Time `gorm:"column:memory_approved_at" json:"memory_approved_at,omitempty"`

	MemoryCreatedAt time.Time `gorm:"column:memory_created_at;autoCreateTime" json:"memory_created_at"`
	MemoryUpdatedAt time.Time `gorm:"column:memory_updated_at;autoUpdateTime" json:"memory_updated_at"`
}

func (TripMemoryModel) TableName() string {
	return "trip_memories"
}
