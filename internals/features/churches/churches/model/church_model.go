package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChurchModel struct {
	ChurchID   uuid.UUID `gorm:"column:church_id;type:uuid;default:gen_random_uuid();primaryKey" json:"church_id"`
	ChurchName string    `gorm:"column:church_name;type:varchar(100);not null" json:"church_name"`
	ChurchSlug string    `gorm:"column:church_slug;type:varchar(100);uniqueIndex;not null" json:"church_slug"`

	// Trip configuration
	ChurchTripDestination string     `gorm:"column:church_trip_destination;type:varchar(150)" json:"church_trip_destination"`
	ChurchTripStartDate   *time.Time `gorm:"column:church_trip_start_date;type:date" json:"church_trip_start_date,omitempty"`
	ChurchTripEndDate     *time.Time `gorm:"column:church_trip_end_date;type:date" json:"church_trip_end_date,omitempty"`
	ChurchTripCost        float64    `gorm:"column:church_trip_cost;type:numeric(12,2);default:0" json:"church_trip_cost"`

	// Free-form settings (contact info, branding, etc.)
	ChurchSettings datatypes.JSONMap `gorm:"column:church_settings" json:"church_settings,omitempty"`

	// Churches are never hard-deleted in normal operation.
	ChurchIsActive  bool           `gorm:"column:church_is_active;default:true" json:"church_is_active"`
	ChurchCreatedAt time.Time      `gorm:"column:church_created_at;autoCreateTime" json:"church_created_at"`
	ChurchUpdatedAt time.Time      `gorm:"column:church_updated_at;autoUpdateTime" json:"church_updated_at"`
	ChurchDeletedAt gorm.DeletedAt `gorm:"column:church_deleted_at" json:"church_deleted_at,omitempty"`
}

func (ChurchModel) TableName() string {
	return "churches"
}
