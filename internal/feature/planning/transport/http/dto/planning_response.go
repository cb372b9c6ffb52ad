package dto

import (
	"time"

	eventdto "twitchplanner/internal/feature/event/transport/http/dto"
	"twitchplanner/internal/feature/planning/domain/entity"
	"twitchplanner/internal/feature/planning/usecase"
)

// PlanningResponse is the JSON representation of a planning with its events.
type PlanningResponse struct {
	ID        uint                     `json:"id"`
	UserID    uint                     `json:"userId"`
	Title     string                   `json:"title"`
	StartDate time.Time                `json:"startDate"`
	EndDate   time.Time                `json:"endDate"`
	CreatedAt time.Time                `json:"createdAt"`
	Events    []eventdto.EventResponse `json:"events"`
}

// NewPlanningResponse converts a planning entity to its JSON representation.
func NewPlanningResponse(p *entity.Planning) PlanningResponse {
	events := make([]eventdto.EventResponse, 0, len(p.Events))
	for i := range p.Events {
		events = append(events, eventdto.NewEventResponse(&p.Events[i]))
	}
	return PlanningResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		CreatedAt: p.CreatedAt,
		Events:    events,
	}
}

// NewPlanningListResponse converts a slice of planning entities. It always
// returns a non-nil slice so the JSON encodes as [] rather than null.
func NewPlanningListResponse(plannings []*entity.Planning) []PlanningResponse {
	out := make([]PlanningResponse, 0, len(plannings))
	for _, p := range plannings {
		out = append(out, NewPlanningResponse(p))
	}
	return out
}

// WeekDayResponse is one day of the weekly export grid.
type WeekDayResponse struct {
	Date      string                   `json:"date"`
	DayOfWeek int                      `json:"dayOfWeek"`
	Events    []eventdto.EventResponse `json:"events"`
}

// NewWeekViewResponse converts the weekly grid projection.
func NewWeekViewResponse(days []usecase.WeekDay) []WeekDayResponse {
	out := make([]WeekDayResponse, 0, len(days))
	for _, d := range days {
		events := make([]eventdto.EventResponse, 0, len(d.Events))
		for i := range d.Events {
			events = append(events, eventdto.NewEventResponse(&d.Events[i]))
		}
		out = append(out, WeekDayResponse{
			Date:      d.Date.Format("2006-01-02"),
			DayOfWeek: d.DayOfWeek,
			Events:    events,
		})
	}
	return out
}
