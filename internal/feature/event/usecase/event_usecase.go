package usecase

import (
	"context"

	"twitchplanner/internal/feature/event/domain/entity"
)

// EventRepository abstracts the persistence layer for event entities.
// Single-event lookups are scoped by the transitive owning user via a join to
// the plannings table, so another user's event is indistinguishable from a
// missing one.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type EventRepository interface {
	// Create persists a new event.
	Create(ctx context.Context, event *entity.Event) error

	// FindAllByPlanning retrieves a planning's events ordered by day of week
	// then start time.
	FindAllByPlanning(ctx context.Context, planningID uint) ([]*entity.Event, error)

	// FindByID retrieves one event whose planning is owned by the user.
	// Returns ErrEventNotFound when absent or not owned.
	FindByID(ctx context.Context, id, userID uint) (*entity.Event, error)

	// Update persists changes to an existing event.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes one event whose planning is owned by the user.
	// Returns ErrEventNotFound when absent or not owned.
	Delete(ctx context.Context, id, userID uint) error
}

// PlanningGuard checks planning ownership before events are listed or created
// under it. Implemented by the planning feature's repository.
type PlanningGuard interface {
	OwnedByUser(ctx context.Context, planningID, userID uint) (bool, error)
}

// CreateEventParams carries the fields for a new event.
type CreateEventParams struct {
	GameName    string
	GameImage   *string
	StreamTitle *string
	DayOfWeek   int
	StartTime   string
	EndTime     *string
}

// UpdateEventParams carries a partial event update. Nil fields are left
// untouched; empty optional strings clear the stored value.
type UpdateEventParams struct {
	GameName    *string
	GameImage   *string
	StreamTitle *string
	DayOfWeek   *int
	StartTime   *string
	EndTime     *string
}

// EventUsecase implements CRUD over the events of a user's plannings.
type EventUsecase struct {
	events    EventRepository
	plannings PlanningGuard
}

// NewEventUsecase creates a new EventUsecase instance.
func NewEventUsecase(events EventRepository, plannings PlanningGuard) *EventUsecase {
	return &EventUsecase{events: events, plannings: plannings}
}

// List returns the events of a planning owned by the user, ordered by day of
// week then start time.
func (u *EventUsecase) List(ctx context.Context, userID, planningID uint) ([]*entity.Event, error) {
	if err := u.checkPlanning(ctx, planningID, userID); err != nil {
		return nil, err
	}
	return u.events.FindAllByPlanning(ctx, planningID)
}

// Create validates and persists a new event under a planning the user owns.
func (u *EventUsecase) Create(ctx context.Context, userID, planningID uint, params CreateEventParams) (*entity.Event, error) {
	if err := u.checkPlanning(ctx, planningID, userID); err != nil {
		return nil, err
	}

	if params.GameName == "" {
		return nil, ErrGameNameRequired
	}
	if !isValidDayOfWeek(params.DayOfWeek) {
		return nil, ErrInvalidDayOfWeek
	}
	if !isValidTime(params.StartTime) {
		return nil, ErrInvalidStartTime
	}

	endTime := normalizeOptional(params.EndTime)
	if endTime != nil {
		if !isValidTime(*endTime) {
			return nil, ErrInvalidEndTime
		}
		// Lexical comparison works because HH:mm is zero-padded.
		if *endTime <= params.StartTime {
			return nil, ErrEndBeforeStart
		}
	}

	gameImage := normalizeOptional(params.GameImage)
	if gameImage != nil && !isValidImage(*gameImage) {
		return nil, ErrInvalidGameImage
	}

	event := &entity.Event{
		PlanningID:  planningID,
		GameName:    params.GameName,
		GameImage:   gameImage,
		StreamTitle: normalizeOptional(params.StreamTitle),
		DayOfWeek:   params.DayOfWeek,
		StartTime:   params.StartTime,
		EndTime:     endTime,
	}
	if err := u.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update applies a partial update. Each supplied field is validated on its
// own, then the end-after-start invariant is re-checked against the merged
// start and end times before anything is persisted.
func (u *EventUsecase) Update(ctx context.Context, userID, id uint, params UpdateEventParams) (*entity.Event, error) {
	event, err := u.events.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if params.GameName != nil {
		if *params.GameName == "" {
			return nil, ErrGameNameRequired
		}
		event.GameName = *params.GameName
	}

	if params.StreamTitle != nil {
		event.StreamTitle = normalizeOptional(params.StreamTitle)
	}

	if params.GameImage != nil {
		image := normalizeOptional(params.GameImage)
		if image != nil && !isValidImage(*image) {
			return nil, ErrInvalidGameImage
		}
		event.GameImage = image
	}

	if params.DayOfWeek != nil {
		if !isValidDayOfWeek(*params.DayOfWeek) {
			return nil, ErrInvalidDayOfWeek
		}
		event.DayOfWeek = *params.DayOfWeek
	}

	if params.StartTime != nil {
		if !isValidTime(*params.StartTime) {
			return nil, ErrInvalidStartTime
		}
		event.StartTime = *params.StartTime
	}

	if params.EndTime != nil {
		endTime := normalizeOptional(params.EndTime)
		if endTime != nil && !isValidTime(*endTime) {
			return nil, ErrInvalidEndTime
		}
		event.EndTime = endTime
	}

	if event.EndTime != nil && *event.EndTime <= event.StartTime {
		return nil, ErrEndBeforeStart
	}

	if err := u.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes one event whose planning the user owns.
func (u *EventUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.events.Delete(ctx, id, userID)
}

// checkPlanning translates a failed ownership check into ErrPlanningNotFound.
func (u *EventUsecase) checkPlanning(ctx context.Context, planningID, userID uint) error {
	owned, err := u.plannings.OwnedByUser(ctx, planningID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrPlanningNotFound
	}
	return nil
}
