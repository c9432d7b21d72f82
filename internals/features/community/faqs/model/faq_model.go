package model

import (
	"time"

	"github.com/google/uuid"
)

type FaqModel struct {
	FaqID       uuid.UUID `gorm:"column:faq_id;type:uuid;default:gen_random_uuid();primaryKey" json:"faq_id"`
	FaqChurchID uuid.UUID `gorm:"column:faq_church_id;type:uuid;not null;index" json:"faq_church_id"`

	FaqQuestion string `gorm:"column:faq_question;type:text;not null" json:"faq_question"`
	FaqAnswer   string `gorm:"column:faq_answer;type:text;not null" json:"faq_answer"`
	FaqCategory string `gorm:"column:faq_category;type:varchar(50);default:'general'" json:"faq_category"`

	FaqIsDisplayed bool `gorm:"column:faq_is_displayed;default:true" json:"faq_is_displayed"`

	FaqCreatedAt time.Time `gorm:"column:faq_created_at;autoCreateTime" json:"faq_created_at"`
	FaqUpdatedAt time.Time `gorm:"column:faq_updated_at;autoUpdateTime" json:"faq_updated_at"`
}

func (FaqModel) TableName() string {
	return "faqs"
}
