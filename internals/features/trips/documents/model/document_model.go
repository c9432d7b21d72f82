package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentModel struct {
	DocumentID             uuid.UUID `gorm:"column:document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"document_id"`
	DocumentChurchID       uuid.UUID `gorm:"column:document_church_id;type:uuid;not null;index" json:"document_church_id"`
	DocumentStudentID      uuid.UUID `gorm:"column:document_student_id;type:uuid;not null;index" json:"document_student_id"`
	DocumentUploaderUserID uuid.UUID `gorm:"column:document_uploader_user_id;type:uuid;not null" json:"document_uploader_user_id"`

	DocumentFileURL string `gorm:"column:document_file_url;type:text;not null" json:"document_file_url"`
	DocumentType    string `gorm:"column:document_type;type:varchar(30);not null" json:"document_type"`

	// pending -> approved | rejected, admin-only transition
	DocumentStatus         string  `gorm:"column:document_status;type:varchar(20);not null;default:'pending';index" json:"document_status"`
	DocumentRejectionNotes *string `gorm:"column:document_rejection_notes;type:text" json:"document_rejection_notes,omitempty"`

	DocumentCreatedAt time.Time `gorm:"column:document_created_at;autoCreateTime" json:"document_created_at"`
	DocumentUpdatedAt time.Time `gorm:"column:document_updated_at;autoUpdateTime" json:"document_updated_at"`
}

func (DocumentModel) TableName() string {
	return "documents"
}
