package dto

import (
	"github.com/google/uuid"

	"weonamission_backend/internals/features/community/contents/model"
)

type CreateContentItemRequest struct {
	Section     string `json:"section" validate:"required,min=2,max=50"`
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Body        string `json:"body" validate:"required"`
	OrderIndex  int    `json:"order_index" validate:"gte=0"`
	IsDisplayed *bool  `json:"is_displayed"`
}

type UpdateContentItemRequest struct {
	Section     *string `json:"section" validate:"omitempty,min=2,max=50"`
	Title       *string `json:"title" validate:"omitempty,min=2,max=200"`
	Body        *string `json:"body"`
	OrderIndex  *int    `json:"order_index" validate:"omitempty,gte=0"`
	IsDisplayed *bool   `json:"is_displayed"`
}

type ContentItemResponse struct {
	ContentID   uuid.UUID `json:"content_id"`
	ChurchID    uuid.UUID `json:"church_id"`
	Section     string    `json:"section"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	OrderIndex  int       `json:"order_index"`
	IsDisplayed bool      `json:"is_displayed"`
}

func ToContentItemResponse(m model.ContentItemModel) ContentItemResponse {
	return ContentItemResponse{
		ContentID:   m.ContentID,
		ChurchID:    m.ContentChurchID,
		Section:     m.ContentSection,
		Title:       m.ContentTitle,
		Body:        m.ContentBody,
		OrderIndex:  m.ContentOrderIndex,
		IsDisplayed: m.ContentIsDisplayed,
	}
}

func ToContentItemResponses(list []model.ContentItemModel) []ContentItemResponse {
	out := make([]ContentItemResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToContentItemResponse(m))
	}
	return out
}
