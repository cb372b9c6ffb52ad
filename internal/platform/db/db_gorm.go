// Package db opens the relational store used for users, plannings, events and
// sessions. PostgreSQL is used when DATABASE_URL is set; otherwise a local
// SQLite file keeps development and tests self-contained.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "twitchplanner/internal/feature/auth/adapters"
	authentity "twitchplanner/internal/feature/auth/domain/entity"
	evententity "twitchplanner/internal/feature/event/domain/entity"
	planningentity "twitchplanner/internal/feature/planning/domain/entity"
	"twitchplanner/internal/platform/config"
)

const (
	connectDeadline = 60 * time.Second
	connectRetry    = 3 * time.Second
)

// Open connects to the configured database, retrying for up to a minute so
// the server survives the database container starting slightly later.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector := dialectorFor(cfg)

	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the adapters rely on.
	gormCfg := &gorm.Config{TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)
	deadline := time.Now().Add(connectDeadline)
	for {
		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %s: %w", connectDeadline, err)
		}
		slog.Warn("database connect failed, retrying", "error", err)
		time.Sleep(connectRetry)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&planningentity.Planning{},
			&evententity.Event{},
			&authadapters.SessionModel{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}

func dialectorFor(cfg *config.Config) gorm.Dialector {
	if cfg.DatabaseURL != "" {
		return postgres.Open(cfg.DatabaseURL)
	}
	return sqlite.Open(cfg.SQLitePath)
}
