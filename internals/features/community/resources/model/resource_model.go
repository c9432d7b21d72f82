package model

import (
	"time"

	"github.com/google/uuid"
)

type ResourceModel struct {
	ResourceID       uuid.UUID `gorm:"column:resource_id;type:uuid;default:gen_random_uuid();primaryKey" json:"resource_id"`
	ResourceChurchID uuid.UUID `gorm:"column:resource_church_id;type:uuid;not null;index" json:"resource_church_id"`

	ResourceName        string `gorm:"column:resource_name;type:varchar(150);not null" json:"resource_name"`
	ResourceDescription string `gorm:"column:resource_description;type:text" json:"resource_description"`
	ResourceURL         string `gorm:"column:resource_url;type:text;not null" json:"resource_url"`
	ResourceCategory    string `gorm:"column:resource_category;type:varchar(20);not null;default:'other'" json:"resource_category"`

	ResourceCreatedAt time.Time `gorm:"column:resource_created_at;autoCreateTime" json:"resource_created_at"`
	ResourceUpdatedAt time.Time `gorm:"column:resource_updated_at;autoUpdateTime" json:"resource_updated_at"`
}

func (ResourceModel) TableName() string {
	return "resources"
}
