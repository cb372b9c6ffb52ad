// Package entity defines the domain entities for the event feature.
package entity

import "time"

// Event is a single scheduled stream entry within a planning: the game being
// played, a weekday slot and an optional image and title.
type Event struct {
	// ID is the unique identifier for the event.
	ID uint `gorm:"primaryKey"`

	// PlanningID is the owning planning.
	PlanningID uint `gorm:"index;not null"`

	// GameName is required and non-empty.
	GameName string `gorm:"size:255;not null"`

	// GameImage is an optional data-URI encoded image.
	GameImage *string `gorm:"type:text"`

	// StreamTitle is an optional title shown on the calendar.
	StreamTitle *string `gorm:"size:255"`

	// DayOfWeek is 1=Monday..7=Sunday.
	DayOfWeek int `gorm:"not null"`

	// StartTime is a 24h "HH:mm" string. Zero-padding makes lexical order
	// match chronological order.
	StartTime string `gorm:"size:5;not null"`

	// EndTime, when present, must be strictly after StartTime.
	EndTime *string `gorm:"size:5"`

	// CreatedAt is the timestamp when the event was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the event was last updated.
	UpdatedAt time.Time
}
