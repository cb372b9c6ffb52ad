// Command server runs the planner HTTP API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authadapters "twitchplanner/internal/feature/auth/adapters"
	authhandler "twitchplanner/internal/feature/auth/transport/handler"
	authusecase "twitchplanner/internal/feature/auth/usecase"
	eventadapters "twitchplanner/internal/feature/event/adapters"
	eventhandler "twitchplanner/internal/feature/event/transport/handler"
	eventusecase "twitchplanner/internal/feature/event/usecase"
	planningadapters "twitchplanner/internal/feature/planning/adapters"
	planninghandler "twitchplanner/internal/feature/planning/transport/handler"
	planningusecase "twitchplanner/internal/feature/planning/usecase"

	"twitchplanner/internal/app/di"
	"twitchplanner/internal/app/router"
	"twitchplanner/internal/platform/config"
	"twitchplanner/internal/platform/db"
	jwtmw "twitchplanner/internal/platform/jwt"
	platformredis "twitchplanner/internal/platform/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Redis is optional. Without it sessions live in the relational store.
	rdb, err := platformredis.NewClient(cfg)
	if err != nil {
		slog.Warn("redis unavailable, using database session store", "error", err)
		rdb = nil
	}

	userRepo := authadapters.NewUserGorm(gormDB)
	sessionRepo := di.NewSessionRepository(rdb, gormDB)
	planningRepo := planningadapters.NewPlanningGorm(gormDB)
	eventRepo := eventadapters.NewEventGorm(gormDB)

	generator := jwtmw.NewGenerator(cfg.JWTSecret, cfg.SessionTTL)
	verifier := jwtmw.NewVerifier(cfg.JWTSecret)

	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, generator, verifier, cfg.SessionTTL)
	planningUC := planningusecase.NewPlanningUsecase(planningRepo)
	eventUC := eventusecase.NewEventUsecase(eventRepo, planningRepo)

	cookieMaxAge := int(cfg.SessionTTL.Seconds())
	handlers := router.Handlers{
		Auth:     authhandler.NewAuthHandler(authUC, cfg.IsProduction(), cookieMaxAge),
		Profile:  authhandler.NewProfileHandler(authUC, cfg.IsProduction()),
		Planning: planninghandler.NewPlanningHandler(planningUC),
		Event:    eventhandler.NewEventHandler(eventUC),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if n, err := sessionRepo.DeleteExpired(ctx); err != nil {
		slog.Warn("expired session cleanup failed", "error", err)
	} else if n > 0 {
		slog.Info("expired sessions removed", "count", n)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.New(handlers, authUC, cfg.CORSOrigin),
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			slog.Warn("redis close failed", "error", err)
		}
	}
	slog.Info("server stopped")
}
