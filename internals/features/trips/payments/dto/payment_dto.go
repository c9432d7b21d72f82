package dto

import (
	"time"

	"github.com/google/uuid"

	"weonamission_backend/internals/features/trips/payments/model"
)

/* ==========================
   Requests
========================== */

type CreatePaymentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Amount    int64     `json:"amount" validate:"required,gt=0"`
	Date      time.Time `json:"date" validate:"required"`
	Method    string    `json:"method" validate:"required,oneof=cash check card transfer online other"`
	Notes     string    `json:"notes" validate:"omitempty,max=2000"`
}

type CheckoutRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Amount    int64     `json:"amount" validate:"required,gt=0"`
}

/* ==========================
   Responses
========================== */

type PaymentResponse struct {
	PaymentID  uuid.UUID  `json:"payment_id"`
	ChurchID   uuid.UUID  `json:"church_id"`
	StudentID  uuid.UUID  `json:"student_id"`
	Amount     int64      `json:"amount"`
	Date       time.Time  `json:"date"`
	Method     string     `json:"method"`
	Notes      string     `json:"notes"`
	RecordedBy *uuid.UUID `json:"recorded_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToPaymentResponse(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:  m.PaymentID,
		ChurchID:   m.PaymentChurchID,
		StudentID:  m.PaymentStudentID,
		Amount:     m.PaymentAmount,
		Date:       m.PaymentDate,
		Method:     m.PaymentMethod,
		Notes:      m.PaymentNotes,
		RecordedBy: m.PaymentRecordedBy,
		CreatedAt:  m.PaymentCreatedAt,
	}
}

func ToPaymentResponses(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}

// StudentTotals is the running balance for one student against the trip cost.
type StudentTotals struct {
	StudentID uuid.UUID `json:"student_id"`
	Paid      int64     `json:"paid"`
	TripCost  int64     `json:"trip_cost"`
	Remaining int64     `json:"remaining"`
}

// ChurchTotals aggregates across the whole church.
type ChurchTotals struct {
	ChurchID     uuid.UUID `json:"church_id"`
	Paid         int64     `json:"paid"`
	StudentCount int64     `json:"student_count"`
	TripCost     int64     `json:"trip_cost"`
	Expected     int64     `json:"expected"`
	Remaining    int64     `json:"remaining"`
}
