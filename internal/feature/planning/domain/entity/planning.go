// Package entity defines the domain entities for the planning feature.
package entity

import (
	"time"

	evententity "twitchplanner/internal/feature/event/domain/entity"
)

// DefaultTitle is used when a planning is created without a title.
const DefaultTitle = "Planning de stream"

// Planning is a user-owned calendar bounded by a start and end date,
// containing the week's scheduled stream events.
type Planning struct {
	// ID is the unique identifier for the planning.
	ID uint `gorm:"primaryKey"`

	// UserID is the owning user. Every query is scoped by it.
	UserID uint `gorm:"index;not null"`

	// Title names the planning; defaults to DefaultTitle.
	Title string `gorm:"size:255;not null"`

	// StartDate and EndDate bound the calendar. EndDate must be strictly
	// after StartDate.
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	// CreatedAt is the timestamp when the planning was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the planning was last updated.
	UpdatedAt time.Time

	// Events are the scheduled entries under this planning.
	Events []evententity.Event `gorm:"foreignKey:PlanningID"`
}
