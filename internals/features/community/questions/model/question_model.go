package model

import (
	"time"

	"github.com/google/uuid"
)

// Question lifecycle: submitted -> pending -> complete.
const (
	QuestionStatusSubmitted = "submitted"
	QuestionStatusPending   = "pending"
	QuestionStatusComplete  = "complete"
)

type UserQuestionModel struct {
	QuestionID       uuid.UUID `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"question_id"`
	QuestionChurchID uuid.UUID `gorm:"column:question_church_id;type:uuid;not null;index" json:"question_church_id"`
	QuestionUserID   uuid.UUID `gorm:"column:question_user_id;type:uuid;not null;index" json:"question_user_id"`

	QuestionText   string `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionStatus string `gorm:"column:question_status;type:varchar(20);not null;default:'submitted';index" json:"question_status"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
}

func (UserQuestionModel) TableName() string {
	return "user_questions"
}
