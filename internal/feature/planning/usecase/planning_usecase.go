package usecase

import (
	"context"
	"time"

	"twitchplanner/internal/feature/planning/domain/entity"
)

// PlanningRepository abstracts the persistence layer for planning entities.
// Every read and write is scoped by the owning user: a planning belonging to
// someone else behaves exactly like a missing one.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type PlanningRepository interface {
	// Create persists a new planning.
	Create(ctx context.Context, planning *entity.Planning) error

	// FindAllByUser retrieves the user's plannings, newest first, with their
	// events loaded.
	FindAllByUser(ctx context.Context, userID uint) ([]*entity.Planning, error)

	// FindByID retrieves one planning owned by the user, with its events
	// ordered by day of week then start time. Returns ErrPlanningNotFound
	// when absent or owned by another user.
	FindByID(ctx context.Context, id, userID uint) (*entity.Planning, error)

	// Update persists changes to an existing planning.
	Update(ctx context.Context, planning *entity.Planning) error

	// Delete removes a planning owned by the user and all its events in one
	// transaction. Returns ErrPlanningNotFound when absent or not owned.
	Delete(ctx context.Context, id, userID uint) error
}

// CreatePlanningParams carries the fields for a new planning.
type CreatePlanningParams struct {
	Title     string
	StartDate time.Time
	EndDate   time.Time
}

// UpdatePlanningParams carries a partial planning update. Nil fields are left
// untouched.
type UpdatePlanningParams struct {
	Title     *string
	StartDate *time.Time
	EndDate   *time.Time
}

// PlanningUsecase implements CRUD over a user's plannings.
type PlanningUsecase struct {
	plannings PlanningRepository
}

// NewPlanningUsecase creates a new PlanningUsecase instance.
func NewPlanningUsecase(plannings PlanningRepository) *PlanningUsecase {
	return &PlanningUsecase{plannings: plannings}
}

// List returns all plannings owned by the user, newest first.
func (u *PlanningUsecase) List(ctx context.Context, userID uint) ([]*entity.Planning, error) {
	return u.plannings.FindAllByUser(ctx, userID)
}

// Get returns one planning owned by the user, with its events.
func (u *PlanningUsecase) Get(ctx context.Context, userID, id uint) (*entity.Planning, error) {
	return u.plannings.FindByID(ctx, id, userID)
}

// Create validates the date range and persists a new planning for the user.
// An empty title falls back to the default.
func (u *PlanningUsecase) Create(ctx context.Context, userID uint, params CreatePlanningParams) (*entity.Planning, error) {
	if params.StartDate.IsZero() || params.EndDate.IsZero() {
		return nil, ErrDatesRequired
	}
	if !params.EndDate.After(params.StartDate) {
		return nil, ErrInvalidDateRange
	}

	title := params.Title
	if title == "" {
		title = entity.DefaultTitle
	}

	planning := &entity.Planning{
		UserID:    userID,
		Title:     title,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}
	if err := u.plannings.Create(ctx, planning); err != nil {
		return nil, err
	}
	return planning, nil
}

// Update applies a partial update. The date-range invariant is checked on the
// merged record, so changing only one bound cannot slip past validation.
func (u *PlanningUsecase) Update(ctx context.Context, userID, id uint, params UpdatePlanningParams) (*entity.Planning, error) {
	planning, err := u.plannings.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		title := *params.Title
		if title == "" {
			title = entity.DefaultTitle
		}
		planning.Title = title
	}
	if params.StartDate != nil {
		planning.StartDate = *params.StartDate
	}
	if params.EndDate != nil {
		planning.EndDate = *params.EndDate
	}

	if !planning.EndDate.After(planning.StartDate) {
		return nil, ErrInvalidDateRange
	}

	if err := u.plannings.Update(ctx, planning); err != nil {
		return nil, err
	}
	return planning, nil
}

// Delete removes a planning owned by the user, cascading to its events.
func (u *PlanningUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.plannings.Delete(ctx, id, userID)
}

// WeekView returns the weekly grid projection for one planning.
func (u *PlanningUsecase) WeekView(ctx context.Context, userID, id uint) ([]WeekDay, error) {
	planning, err := u.plannings.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return BuildWeekView(planning), nil
}
