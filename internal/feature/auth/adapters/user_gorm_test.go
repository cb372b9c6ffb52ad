package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"twitchplanner/internal/feature/auth/domain/entity"
	"twitchplanner/internal/feature/auth/usecase"
	evententity "twitchplanner/internal/feature/event/domain/entity"
	planningentity "twitchplanner/internal/feature/planning/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&planningentity.Planning{},
		&evententity.Event{},
		&SessionModel{},
	))
	return db
}

func TestUserGormCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserGorm(db)
	ctx := context.Background()

	u := &entity.User{Email: "streamer@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		dup := &entity.User{Email: "streamer@example.com", Password: "other"}
		assert.ErrorIs(t, repo.Create(ctx, dup), usecase.ErrEmailAlreadyExists)
	})
}

func TestUserGormFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserGorm(db)
	ctx := context.Background()

	u := &entity.User{Email: "streamer@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(ctx, u))

	t.Run("by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "streamer@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, found.ID)
	})

	t.Run("by unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "streamer@example.com", found.Email)
	})

	t.Run("by unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 999)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGormUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserGorm(db)
	ctx := context.Background()

	logo := "data:image/png;base64,AAA"
	u := &entity.User{Email: "streamer@example.com", Password: "hashed", Logo: &logo}
	require.NoError(t, repo.Create(ctx, u))

	t.Run("cleared logo is persisted as NULL", func(t *testing.T) {
		u.Logo = nil
		require.NoError(t, repo.Update(ctx, u))

		found, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Nil(t, found.Logo)
	})

	t.Run("email taken by another user is rejected", func(t *testing.T) {
		other := &entity.User{Email: "other@example.com", Password: "hashed"}
		require.NoError(t, repo.Create(ctx, other))

		other.Email = "streamer@example.com"
		assert.ErrorIs(t, repo.Update(ctx, other), usecase.ErrEmailAlreadyExists)
	})
}

func TestUserGormDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserGorm(db)
	ctx := context.Background()

	owner := &entity.User{Email: "owner@example.com", Password: "hashed"}
	bystander := &entity.User{Email: "bystander@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(ctx, owner))
	require.NoError(t, repo.Create(ctx, bystander))

	seedPlanning := func(userID uint) *planningentity.Planning {
		p := &planningentity.Planning{UserID: userID, Title: "t"}
		require.NoError(t, db.Create(p).Error)
		require.NoError(t, db.Create(&evententity.Event{
			PlanningID: p.ID, GameName: "Hades", DayOfWeek: 1, StartTime: "18:00",
		}).Error)
		return p
	}
	ownerPlanning := seedPlanning(owner.ID)
	bystanderPlanning := seedPlanning(bystander.ID)

	t.Run("removes the user, plannings and events", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, owner.ID))

		_, err := repo.FindByID(ctx, owner.ID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)

		var planningCount, eventCount int64
		db.Model(&planningentity.Planning{}).Where("user_id = ?", owner.ID).Count(&planningCount)
		db.Model(&evententity.Event{}).Where("planning_id = ?", ownerPlanning.ID).Count(&eventCount)
		assert.Zero(t, planningCount)
		assert.Zero(t, eventCount)
	})

	t.Run("other users' data is untouched", func(t *testing.T) {
		var planningCount, eventCount int64
		db.Model(&planningentity.Planning{}).Where("user_id = ?", bystander.ID).Count(&planningCount)
		db.Model(&evententity.Event{}).Where("planning_id = ?", bystanderPlanning.ID).Count(&eventCount)
		assert.Equal(t, int64(1), planningCount)
		assert.Equal(t, int64(1), eventCount)
	})

	t.Run("unknown user is reported", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, 999), usecase.ErrUserNotFound)
	})
}
