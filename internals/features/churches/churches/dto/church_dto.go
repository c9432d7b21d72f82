// file: internals/features/churches/churches/dto/church_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	"weonamission_backend/internals/features/churches/churches/model"
)

/* =========================================================
   REQUEST DTO — CREATE / UPDATE (writable fields only)
   Slug is derived from the name when omitted; is_active is
   writable by the superadmin only (enforced in controller).
========================================================= */

type ChurchRequest struct {
	ChurchName string `json:"church_name" validate:"required,min=3,max=100"`
	ChurchSlug string `json:"church_slug" validate:"omitempty,min=3,max=100"`

	ChurchTripDestination string     `json:"church_trip_destination" validate:"omitempty,max=150"`
	ChurchTripStartDate   *time.Time `json:"church_trip_start_date,omitempty"`
	ChurchTripEndDate     *time.Time `json:"church_trip_end_date,omitempty"`
	ChurchTripCost        float64    `json:"church_trip_cost" validate:"gte=0"`

	ChurchSettings datatypes.JSONMap `json:"church_settings,omitempty"`
	ChurchIsActive *bool             `json:"church_is_active,omitempty"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ChurchResponse struct {
	ChurchID   string `json:"church_id"`
	ChurchName string `json:"church_name"`
	ChurchSlug string `json:"church_slug"`

	ChurchTripDestination string     `json:"church_trip_destination"`
	ChurchTripStartDate   *time.Time `json:"church_trip_start_date,omitempty"`
	ChurchTripEndDate     *time.Time `json:"church_trip_end_date,omitempty"`
	ChurchTripCost        float64    `json:"church_trip_cost"`

	ChurchSettings datatypes.JSONMap `json:"church_settings,omitempty"`
	ChurchIsActive bool              `json:"church_is_active"`
	ChurchCreatedAt time.Time        `json:"church_created_at"`
}

func ToChurchResponse(m model.ChurchModel) ChurchResponse {
	return ChurchResponse{
		ChurchID:              m.ChurchID.String(),
		ChurchName:            m.ChurchName,
		ChurchSlug:            m.ChurchSlug,
		ChurchTripDestination: m.ChurchTripDestination,
		ChurchTripStartDate:   m.ChurchTripStartDate,
		ChurchTripEndDate:     m.ChurchTripEndDate,
		ChurchTripCost:        m.ChurchTripCost,
		ChurchSettings:        m.ChurchSettings,
		ChurchIsActive:        m.ChurchIsActive,
		ChurchCreatedAt:       m.ChurchCreatedAt,
	}
}

func ToChurchResponses(ms []model.ChurchModel) []ChurchResponse {
	out := make([]ChurchResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToChurchResponse(m))
	}
	return out
}
