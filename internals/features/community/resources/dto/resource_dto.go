package dto

import (
	"github.com/google/uuid"

	"weonamission_backend/internals/features/community/resources/model"
)

type CreateResourceRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=150"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	URL         string `json:"url" validate:"required,url"`
	Category    string `json:"category" validate:"required,oneof=document video website form guide other"`
}

type UpdateResourceRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=150"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	URL         *string `json:"url" validate:"omitempty,url"`
	Category    *string `json:"category" validate:"omitempty,oneof=document video website form guide other"`
}

type ResourceResponse struct {
	ResourceID  uuid.UUID `json:"resource_id"`
	ChurchID    uuid.UUID `json:"church_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
}

func ToResourceResponse(m model.ResourceModel) ResourceResponse {
	return ResourceResponse{
		ResourceID:  m.ResourceID,
		ChurchID:    m.ResourceChurchID,
		Name:        m.ResourceName,
		Description: m.ResourceDescription,
		URL:         m.ResourceURL,
		Category:    m.ResourceCategory,
	}
}

func ToResourceResponses(list []model.ResourceModel) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToResourceResponse(m))
	}
	return out
}
