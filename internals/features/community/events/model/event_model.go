package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventCategoryMeeting     = "meeting"
	EventCategoryDeadline    = "deadline"
	EventCategoryActivity    = "activity"
	EventCategoryPreparation = "preparation"
	EventCategoryTravel      = "travel"
	EventCategoryFundraiser  = "fundraiser"
	EventCategoryOther       = "other"
)

type EventModel struct {
	EventID       uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventChurchID uuid.UUID `gorm:"column:event_church_id;type:uuid;not null;index" json:"event_church_id"`

	EventName        string    `gorm:"column:event_name;type:varchar(150);not null" json:"event_name"`
	EventDescription string    `gorm:"column:event_description;type:text" json:"event_description"`
	EventStartsAt    time.Time `gorm:"column:event_starts_at;not null;index" json:"event_starts_at"`
	EventLocation    string    `gorm:"column:event_location;type:varchar(200)" json:"event_location"`
	EventCategory    string    `gorm:"column:event_category;type:varchar(20);not null;default:'other'" json:"event_category"`

	// hidden from non-admin calendars when false
	EventShowOnCalendar bool `gorm:"column:event_show_on_calendar;default:true" json:"event_show_on_calendar"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
