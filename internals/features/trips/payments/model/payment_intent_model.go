package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	IntentStatusPending = "pending"
	IntentStatusSettled = "settled"
	IntentStatusFailed  = "failed"
)

// PaymentIntentModel tracks a Snap checkout from token creation to the
// gateway's settlement notification.
type PaymentIntentModel struct {
	IntentOrderID   string    `gorm:"column:intent_order_id;type:varchar(64);primaryKey" json:"intent_order_id"`
	IntentChurchID  uuid.UUID `gorm:"column:intent_church_id;type:uuid;not null;index" json:"intent_church_id"`
	IntentStudentID uuid.UUID `gorm:"column:intent_student_id;type:uuid;not null" json:"intent_student_id"`
	IntentUserID    uuid.UUID `gorm:"column:intent_user_id;type:uuid;not null" json:"intent_user_id"`
	IntentAmount    int64     `gorm:"column:intent_amount;type:bigint;not null" json:"intent_amount"`
	IntentStatus    string    `gorm:"column:intent_status;type:varchar(20);not null;default:'pending'" json:"intent_status"`

	IntentCreatedAt time.Time `gorm:"column:intent_created_at;autoCreateTime" json:"intent_created_at"`
	IntentUpdatedAt time.Time `gorm:"column:intent_updated_at;autoUpdateTime" json:"intent_updated_at"`
}

func (PaymentIntentModel) TableName() string {
	return "payment_intents"
}
