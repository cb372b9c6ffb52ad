// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"twitchplanner/internal/feature/auth/domain/entity"
	"twitchplanner/internal/feature/auth/usecase"
	evententity "twitchplanner/internal/feature/event/domain/entity"
	planningentity "twitchplanner/internal/feature/planning/domain/entity"
)

// userGorm is the gorm implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new instance of userGorm with the given connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create adds a user to the database. Returns usecase.ErrEmailAlreadyExists
// when the email is already registered.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update saves the full user record. Returns usecase.ErrEmailAlreadyExists
// when the email is taken by another user.
func (r *userGorm) Update(ctx context.Context, u *entity.User) error {
	// Save with Select so cleared pointer fields (logo) are written as NULL.
	err := r.db.WithContext(ctx).
		Model(u).
		Select("email", "password", "twitch_url", "logo").
		Updates(u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// Delete removes the user and everything the user owns in one transaction:
// events under the user's plannings, the plannings, then the user row.
func (r *userGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		planningIDs := tx.Model(&planningentity.Planning{}).
			Select("id").
			Where("user_id = ?", id)

		if err := tx.Where("planning_id IN (?)", planningIDs).
			Delete(&evententity.Event{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).
			Delete(&planningentity.Planning{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrUserNotFound
		}
		return nil
	})
}
