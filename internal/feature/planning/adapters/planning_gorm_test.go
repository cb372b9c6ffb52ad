package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "twitchplanner/internal/feature/auth/domain/entity"
	evententity "twitchplanner/internal/feature/event/domain/entity"
	"twitchplanner/internal/feature/planning/domain/entity"
	"twitchplanner/internal/feature/planning/usecase"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authentity.User{},
		&entity.Planning{},
		&evententity.Event{},
	))
	return db
}

func seedPlanning(t *testing.T, db *gorm.DB, userID uint) *entity.Planning {
	t.Helper()
	p := &entity.Planning{
		UserID:    userID,
		Title:     "Semaine",
		StartDate: time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 22, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestPlanningGormFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanningGorm(db)
	ctx := context.Background()

	p := seedPlanning(t, db, 1)

	t.Run("owner sees the planning", func(t *testing.T) {
		found, err := repo.FindByID(ctx, p.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, p.ID, found.ID)
	})

	t.Run("another user gets not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, p.ID, 2)
		assert.ErrorIs(t, err, usecase.ErrPlanningNotFound)
	})

	t.Run("events come back in weekly order", func(t *testing.T) {
		for _, e := range []evententity.Event{
			{PlanningID: p.ID, GameName: "c", DayOfWeek: 3, StartTime: "10:00"},
			{PlanningID: p.ID, GameName: "b", DayOfWeek: 1, StartTime: "20:00"},
			{PlanningID: p.ID, GameName: "a", DayOfWeek: 1, StartTime: "09:00"},
		} {
			ev := e
			require.NoError(t, db.Create(&ev).Error)
		}

		found, err := repo.FindByID(ctx, p.ID, 1)
		require.NoError(t, err)
		require.Len(t, found.Events, 3)
		assert.Equal(t, "a", found.Events[0].GameName)
		assert.Equal(t, "b", found.Events[1].GameName)
		assert.Equal(t, "c", found.Events[2].GameName)
	})
}

func TestPlanningGormFindAllByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanningGorm(db)
	ctx := context.Background()

	seedPlanning(t, db, 1)
	seedPlanning(t, db, 1)
	seedPlanning(t, db, 2)

	mine, err := repo.FindAllByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := repo.FindAllByUser(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPlanningGormDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanningGorm(db)
	ctx := context.Background()

	p := seedPlanning(t, db, 1)
	require.NoError(t, db.Create(&evententity.Event{
		PlanningID: p.ID, GameName: "Hades", DayOfWeek: 1, StartTime: "18:00",
	}).Error)

	t.Run("another user cannot delete it", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, p.ID, 2), usecase.ErrPlanningNotFound)

		var count int64
		db.Model(&entity.Planning{}).Where("id = ?", p.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("owner delete cascades to events", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, p.ID, 1))

		var planningCount, eventCount int64
		db.Model(&entity.Planning{}).Where("id = ?", p.ID).Count(&planningCount)
		db.Model(&evententity.Event{}).Where("planning_id = ?", p.ID).Count(&eventCount)
		assert.Zero(t, planningCount)
		assert.Zero(t, eventCount)
	})
}

func TestPlanningGormOwnedByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanningGorm(db)
	ctx := context.Background()

	p := seedPlanning(t, db, 1)

	owned, err := repo.OwnedByUser(ctx, p.ID, 1)
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = repo.OwnedByUser(ctx, p.ID, 2)
	require.NoError(t, err)
	assert.False(t, owned)

	owned, err = repo.OwnedByUser(ctx, 999, 1)
	require.NoError(t, err)
	assert.False(t, owned)
}
