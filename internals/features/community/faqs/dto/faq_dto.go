package dto

import (
	"github.com/google/uuid"

	"weonamission_backend/internals/features/community/faqs/model"
)

type CreateFaqRequest struct {
	Question    string `json:"question" validate:"required,min=5,max=5000"`
	Answer      string `json:"answer" validate:"required,min=2,max=10000"`
	Category    string `json:"category" validate:"omitempty,max=50"`
	IsDisplayed *bool  `json:"is_displayed"`
}

type UpdateFaqRequest struct {
	Question    *string `json:"question" validate:"omitempty,min=5,max=5000"`
	Answer      *string `json:"answer" validate:"omitempty,min=2,max=10000"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	IsDisplayed *bool   `json:"is_displayed"`
}

type FaqResponse struct {
	FaqID       uuid.UUID `json:"faq_id"`
	ChurchID    uuid.UUID `json:"church_id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Category    string    `json:"category"`
	IsDisplayed bool      `json:"is_displayed"`
}

func ToFaqResponse(m model.FaqModel) FaqResponse {
	return FaqResponse{
		FaqID:       m.FaqID,
		ChurchID:    m.FaqChurchID,
		Question:    m.FaqQuestion,
		Answer:      m.FaqAnswer,
		Category:    m.FaqCategory,
		IsDisplayed: m.FaqIsDisplayed,
	}
}

func ToFaqResponses(list []model.FaqModel) []FaqResponse {
	out := make([]FaqResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToFaqResponse(m))
	}
	return out
}
