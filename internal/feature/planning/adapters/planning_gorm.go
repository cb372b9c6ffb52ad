// Package adapters provides repository implementations for the planning feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	evententity "twitchplanner/internal/feature/event/domain/entity"
	"twitchplanner/internal/feature/planning/domain/entity"
	"twitchplanner/internal/feature/planning/usecase"
)

// eventOrder sorts a planning's events chronologically within the week.
const eventOrder = "day_of_week ASC, start_time ASC"

// planningGorm is the gorm implementation of the PlanningRepository interface.
type planningGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure planningGorm implements PlanningRepository.
var _ usecase.PlanningRepository = (*planningGorm)(nil)

// NewPlanningGorm creates a new instance of planningGorm.
func NewPlanningGorm(db *gorm.DB) *planningGorm {
	return &planningGorm{db: db}
}

// Create persists a new planning.
func (r *planningGorm) Create(ctx context.Context, p *entity.Planning) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindAllByUser retrieves the user's plannings, newest first, events included.
func (r *planningGorm) FindAllByUser(ctx context.Context, userID uint) ([]*entity.Planning, error) {
	var plannings []*entity.Planning
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order(eventOrder)
		}).
		Find(&plannings).Error
	if err != nil {
		return nil, err
	}
	return plannings, nil
}

// FindByID retrieves one planning scoped by owner, with ordered events.
// A planning owned by another user is reported as not found.
func (r *planningGorm) FindByID(ctx context.Context, id, userID uint) (*entity.Planning, error) {
	var p entity.Planning
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order(eventOrder)
		}).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPlanningNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update saves the planning's mutable fields.
func (r *planningGorm) Update(ctx context.Context, p *entity.Planning) error {
	return r.db.WithContext(ctx).
		Model(p).
		Select("title", "start_date", "end_date").
		Updates(p).Error
}

// Delete removes a planning owned by the user and its events in one
// transaction. Ownership is verified before anything is touched.
func (r *planningGorm) Delete(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p entity.Planning
		if err := tx.Select("id").
			Where("id = ? AND user_id = ?", id, userID).
			First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrPlanningNotFound
			}
			return err
		}

		if err := tx.Where("planning_id = ?", id).
			Delete(&evententity.Event{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Planning{}, id).Error
	})
}

// OwnedByUser reports whether the planning exists and belongs to the user.
// The event feature uses it for its ownership checks.
func (r *planningGorm) OwnedByUser(ctx context.Context, planningID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Planning{}).
		Where("id = ? AND user_id = ?", planningID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
