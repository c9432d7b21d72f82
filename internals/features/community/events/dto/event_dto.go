package dto

import (
	"time"

	"github.com/google/uuid"

	"weonamission_backend/internals/features/community/events/model"
)

type CreateEventRequest struct {
	Name           string    `json:"name" validate:"required,min=3,max=150"`
	Description    string    `json:"description" validate:"omitempty,max=5000"`
	StartsAt       time.Time `json:"starts_at" validate:"required"`
	Location       string    `json:"location" validate:"omitempty,max=200"`
	Category       string    `json:"category" validate:"required,oneof=meeting deadline activity preparation travel fundraiser other"`
	ShowOnCalendar *bool     `json:"show_on_calendar"`
}

type UpdateEventRequest struct {
	Name           *string    `json:"name" validate:"omitempty,min=3,max=150"`
	Description    *string    `json:"description" validate:"omitempty,max=5000"`
	StartsAt       *time.Time `json:"starts_at"`
	Location       *string    `json:"location" validate:"omitempty,max=200"`
	Category       *string    `json:"category" validate:"omitempty,oneof=meeting deadline activity preparation travel fundraiser other"`
	ShowOnCalendar *bool      `json:"show_on_calendar"`
}

type EventResponse struct {
	EventID        uuid.UUID `json:"event_id"`
	ChurchID       uuid.UUID `json:"church_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	StartsAt       time.Time `json:"starts_at"`
	Location       string    `json:"location"`
	Category       string    `json:"category"`
	ShowOnCalendar bool      `json:"show_on_calendar"`
}

func ToEventResponse(m model.EventModel) EventResponse {
	return EventResponse{
		EventID:        m.EventID,
		ChurchID:       m.EventChurchID,
		Name:           m.EventName,
		Description:    m.EventDescription,
		StartsAt:       m.EventStartsAt,
		Location:       m.EventLocation,
		Category:       m.EventCategory,
		ShowOnCalendar: m.EventShowOnCalendar,
	}
}

func ToEventResponses(list []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToEventResponse(m))
	}
	return out
}
