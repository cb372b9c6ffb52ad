package dto

import (
	"time"

	"twitchplanner/internal/feature/event/domain/entity"
)

// EventResponse is the JSON representation of an event.
type EventResponse struct {
	ID          uint      `json:"id"`
	PlanningID  uint      `json:"planningId"`
	GameName    string    `json:"gameName"`
	GameImage   *string   `json:"gameImage"`
	StreamTitle *string   `json:"streamTitle"`
	DayOfWeek   int       `json:"dayOfWeek"`
	StartTime   string    `json:"startTime"`
	EndTime     *string   `json:"endTime"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewEventResponse converts an event entity to its JSON representation.
func NewEventResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		PlanningID:  e.PlanningID,
		GameName:    e.GameName,
		GameImage:   e.GameImage,
		StreamTitle: e.StreamTitle,
		DayOfWeek:   e.DayOfWeek,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		CreatedAt:   e.CreatedAt,
	}
}

// NewEventListResponse converts a slice of event entities. It always returns
// a non-nil slice so the JSON encodes as [] rather than null.
func NewEventListResponse(events []*entity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResponse(e))
	}
	return out
}
