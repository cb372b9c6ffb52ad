// Package adapters provides repository implementations for the event feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"twitchplanner/internal/feature/event/domain/entity"
	"twitchplanner/internal/feature/event/usecase"
)

// eventGorm is the gorm implementation of the EventRepository interface.
type eventGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure eventGorm implements EventRepository.
var _ usecase.EventRepository = (*eventGorm)(nil)

// NewEventGorm creates a new instance of eventGorm.
func NewEventGorm(db *gorm.DB) *eventGorm {
	return &eventGorm{db: db}
}

// Create persists a new event.
func (r *eventGorm) Create(ctx context.Context, e *entity.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindAllByPlanning retrieves a planning's events in weekly order.
func (r *eventGorm) FindAllByPlanning(ctx context.Context, planningID uint) ([]*entity.Event, error) {
	var events []*entity.Event
	err := r.db.WithContext(ctx).
		Where("planning_id = ?", planningID).
		Order("day_of_week ASC, start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// FindByID retrieves one event scoped by the transitive owner through a join
// to the plannings table. Another user's event reads as not found.
func (r *eventGorm) FindByID(ctx context.Context, id, userID uint) (*entity.Event, error) {
	var e entity.Event
	err := r.db.WithContext(ctx).
		Joins("JOIN plannings ON plannings.id = events.planning_id").
		Where("events.id = ? AND plannings.user_id = ?", id, userID).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Update saves the event's mutable fields. Select forces cleared pointer
// fields (image, title, end time) to be written as NULL.
func (r *eventGorm) Update(ctx context.Context, e *entity.Event) error {
	return r.db.WithContext(ctx).
		Model(e).
		Select("game_name", "game_image", "stream_title", "day_of_week", "start_time", "end_time").
		Updates(e).Error
}

// Delete removes one event after resolving it through the ownership join.
func (r *eventGorm) Delete(ctx context.Context, id, userID uint) error {
	e, err := r.FindByID(ctx, id, userID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&entity.Event{}, e.ID).Error
}
