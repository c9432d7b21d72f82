package model

import (
	"time"

	"github.com/google/uuid"
)

type QuestionResponseModel struct {
	ResponseID         uuid.UUID `gorm:"column:response_id;type:uuid;default:gen_random_uuid();primaryKey" json:"response_id"`
	ResponseQuestionID uuid.UUID `gorm:"column:response_question_id;type:uuid;not null;index" json:"response_question_id"`
	ResponseAdminID    uuid.UUID `gorm:"column:response_admin_id;type:uuid;not null" json:"response_admin_id"`

	ResponseText string `gorm:"column:response_text;type:text;not null" json:"response_text"`

	// when set, an FAQ row was minted from this answer in the same transaction
	ResponseIsFaq bool `gorm:"column:response_is_faq;default:false" json:"response_is_faq"`

	ResponseCreatedAt time.Time `gorm:"column:response_created_at;autoCreateTime" json:"response_created_at"`
}

func (QuestionResponseModel) TableName() string {
	return "question_responses"
}
