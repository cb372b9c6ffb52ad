// Package usecase implements the business logic for the planning feature.
package usecase

import "errors"

var (
	// ErrPlanningNotFound is returned when a planning does not exist or is
	// owned by another user. The two cases are deliberately indistinguishable.
	ErrPlanningNotFound = errors.New("planning not found")

	// ErrDatesRequired is returned when a creation request omits either date.
	ErrDatesRequired = errors.New("start and end dates are required")

	// ErrInvalidDateRange is returned when the end date is not strictly after
	// the start date.
	ErrInvalidDateRange = errors.New("end date must be after start date")
)
