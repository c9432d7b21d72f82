package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentItemModel is a generic admin-managed content block, grouped into
// free-form sections (packing, phrases, tips, ...) and ordered within each.
type ContentItemModel struct {
	ContentID       uuid.UUID `gorm:"column:content_id;type:uuid;default:gen_random_uuid();primaryKey" json:"content_id"`
	ContentChurchID uuid.UUID `gorm:"column:content_church_id;type:uuid;not null;index" json:"content_church_id"`

	ContentSection string `gorm:"column:content_section;type:varchar(50);not null;index" json:"content_section"`
	ContentTitle   string `gorm:"column:content_title;type:varchar(200);not null" json:"content_title"`
	ContentBody    string `gorm:"column:content_body;type:text;not null" json:"content_body"`

	ContentOrderIndex  int  `gorm:"column:content_order_index;default:0" json:"content_order_index"`
	ContentIsDisplayed bool `gorm:"column:content_is_displayed;default:true" json:"content_is_displayed"`

	ContentCreatedAt time.Time `gorm:"column:content_created_at;autoCreateTime" json:"content_created_at"`
	ContentUpdatedAt time.Time `gorm:"column:content_updated_at;autoUpdateTime" json:"content_updated_at"`
}

func (ContentItemModel) TableName() string {
	return "content_items"
}
