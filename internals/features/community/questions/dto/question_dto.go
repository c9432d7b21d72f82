package dto

import (
	"time"

	"github.com/google/uuid"

	"weonamission_backend/internals/features/community/questions/model"
)

/* ==========================
   Requests
========================== */

type SubmitQuestionRequest struct {
	Text string `json:"text" validate:"required,min=5,max=5000"`
}

type RespondQuestionRequest struct {
	Text        string `json:"text" validate:"required,min=2,max=10000"`
	IsFaq       bool   `json:"is_faq"`
	FaqCategory string `json:"faq_category" validate:"omitempty,max=50"`
}

/* ==========================
   Responses
========================== */

type QuestionResponseView struct {
	ResponseID uuid.UUID `json:"response_id"`
	AdminID    uuid.UUID `json:"admin_id"`
	Text       string    `json:"text"`
	IsFaq      bool      `json:"is_faq"`
	CreatedAt  time.Time `json:"created_at"`
}

type QuestionView struct {
	QuestionID uuid.UUID              `json:"question_id"`
	ChurchID   uuid.UUID              `json:"church_id"`
	UserID     uuid.UUID              `json:"user_id"`
	Text       string                 `json:"text"`
	Status     string                 `json:"status"`
	CreatedAt  time.Time              `json:"created_at"`
	Responses  []QuestionResponseView `json:"responses,omitempty"`
}

func ToQuestionView(q model.UserQuestionModel, responses []model.QuestionResponseModel) QuestionView {
	view := QuestionView{
		QuestionID: q.QuestionID,
		ChurchID:   q.QuestionChurchID,
		UserID:     q.QuestionUserID,
		Text:       q.QuestionText,
		Status:     q.QuestionStatus,
		CreatedAt:  q.QuestionCreatedAt,
	}
	for _, r := range responses {
		view.Responses = append(view.Responses, QuestionResponseView{
			ResponseID: r.ResponseID,
			AdminID:    r.ResponseAdminID,
			Text:       r.ResponseText,
			IsFaq:      r.ResponseIsFaq,
			CreatedAt:  r.ResponseCreatedAt,
		})
	}
	return view
}

func ToQuestionViews(list []model.UserQuestionModel) []QuestionView {
	out := make([]QuestionView, 0, len(list))
	for _, q := range list {
		out = append(out, ToQuestionView(q, nil))
	}
	return out
}
