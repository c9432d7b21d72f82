package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel is append-only: rows are inserted by admins (offline
// payments) or by the gateway webhook, and never updated or deleted.
type PaymentModel struct {
	PaymentID        uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentChurchID  uuid.UUID `gorm:"column:payment_church_id;type:uuid;not null;index" json:"payment_church_id"`
	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`
	PaymentAmount    int64     `gorm:"column:payment_amount;type:bigint;not null" json:"payment_amount"`
	PaymentDate      time.Time `gorm:"column:payment_date;not null" json:"payment_date"`
	PaymentMethod    string    `gorm:"column:payment_method;type:varchar(30);not null" json:"payment_method"`
	PaymentNotes     string    `gorm:"column:payment_notes;type:text" json:"payment_notes"`

	// admin who recorded an offline payment; NULL for gateway settlements
	PaymentRecordedBy *uuid.UUID `gorm:"column:payment_recorded_by;type:uuid" json:"payment_recorded_by,omitempty"`

	// gateway order id, unique so a replayed notification cannot double-insert
	PaymentOrderID *string `gorm:"column:payment_order_id;type:varchar(64);uniqueIndex" json:"payment_order_id,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
