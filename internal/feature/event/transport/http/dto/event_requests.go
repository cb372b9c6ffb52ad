// Package dto defines data transfer objects for the event feature's HTTP
// transport layer. Field validation lives in the usecase so the exact rules
// (time format, weekday range, image prefix) apply identically on create and
// update.
package dto

// CreateEventReq represents the request body for creating an event.
type CreateEventReq struct {
	GameName    string  `json:"gameName"`
	GameImage   *string `json:"gameImage"`
	StreamTitle *string `json:"streamTitle"`
	DayOfWeek   int     `json:"dayOfWeek"`
	StartTime   string  `json:"startTime"`
	EndTime     *string `json:"endTime"`
}

// UpdateEventReq represents a partial event update. Nil fields are left
// untouched; empty optional strings clear the stored value.
type UpdateEventReq struct {
	GameName    *string `json:"gameName"`
	GameImage   *string `json:"gameImage"`
	StreamTitle *string `json:"streamTitle"`
	DayOfWeek   *int    `json:"dayOfWeek"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
}
