// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered streamer account.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// TwitchURL is the user's channel link, shown on exported calendars.
	TwitchURL *string `gorm:"size:512"`

	// Logo is the user's avatar as a data-URI encoded image.
	Logo *string `gorm:"type:text"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
