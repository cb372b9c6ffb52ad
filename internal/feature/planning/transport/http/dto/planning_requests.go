// Package dto defines data transfer objects for the planning feature's HTTP
// transport layer.
package dto

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned when a date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC 3339")

// CreatePlanningReq represents the request body for creating a planning.
type CreatePlanningReq struct {
	Title     string `json:"title"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// UpdatePlanningReq represents a partial planning update. Nil fields are left
// untouched.
type UpdatePlanningReq struct {
	Title     *string `json:"title"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// ParseDate accepts the two formats clients send: a bare date from an HTML
// date input, or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
