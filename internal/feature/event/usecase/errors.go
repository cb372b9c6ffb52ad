// Package usecase implements the business logic for the event feature.
package usecase

import "errors"

var (
	// ErrEventNotFound is returned when an event does not exist or its
	// planning is owned by another user; the cases are indistinguishable.
	ErrEventNotFound = errors.New("event not found")

	// ErrPlanningNotFound is returned when the target planning does not
	// exist or is owned by another user.
	ErrPlanningNotFound = errors.New("planning not found")

	// ErrGameNameRequired is returned when the game name is missing or empty.
	ErrGameNameRequired = errors.New("game name is required")

	// ErrInvalidDayOfWeek is returned when the weekday is outside 1..7.
	ErrInvalidDayOfWeek = errors.New("day of week must be an integer between 1 and 7")

	// ErrInvalidStartTime is returned when the start time is missing or not
	// a valid 24h HH:mm string.
	ErrInvalidStartTime = errors.New("start time must be in HH:mm format")

	// ErrInvalidEndTime is returned when the end time is not a valid 24h
	// HH:mm string.
	ErrInvalidEndTime = errors.New("end time must be in HH:mm format")

	// ErrEndBeforeStart is returned when the end time is not strictly after
	// the start time. Equal times are rejected.
	ErrEndBeforeStart = errors.New("end time must be after start time")

	// ErrInvalidGameImage is returned when the game image is not a data-URI
	// encoded image.
	ErrInvalidGameImage = errors.New("game image must be a data-URI encoded image")
)
