// Package router wires HTTP routes to their handlers.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	authhandler "twitchplanner/internal/feature/auth/transport/handler"
	eventhandler "twitchplanner/internal/feature/event/transport/handler"
	planninghandler "twitchplanner/internal/feature/planning/transport/handler"
	platformhandler "twitchplanner/internal/platform/http/handler"
	jwtmw "twitchplanner/internal/platform/jwt"
	"twitchplanner/internal/shared/ratelimiter"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth     *authhandler.AuthHandler
	Profile  *authhandler.ProfileHandler
	Planning *planninghandler.PlanningHandler
	Event    *eventhandler.EventHandler
}

// New builds the Gin engine with CORS, the public auth endpoints and the
// session-protected resource routes.
func New(h Handlers, auth jwtmw.Authenticator, corsOrigin string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", platformhandler.Health)

	// Credential endpoints get their own per-IP budget.
	credLimiter := ratelimiter.NewClientLimiter(rate.Every(time.Second), 10)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", credLimiter.Middleware(), h.Auth.Register)
		authGroup.POST("/login", credLimiter.Middleware(), h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
		authGroup.GET("/me", jwtmw.AuthRequired(auth), h.Auth.Me)
	}

	protected := r.Group("/", jwtmw.AuthRequired(auth))
	{
		profile := protected.Group("/profile")
		{
			profile.GET("", h.Profile.Get)
			profile.PUT("", h.Profile.Update)
			profile.DELETE("", h.Profile.Delete)
		}

		plannings := protected.Group("/plannings")
		{
			plannings.GET("", h.Planning.List)
			plannings.POST("", h.Planning.Create)
			plannings.GET("/:id", h.Planning.Get)
			plannings.PUT("/:id", h.Planning.Update)
			plannings.DELETE("/:id", h.Planning.Delete)
			plannings.GET("/:id/week", h.Planning.Week)
		}

		events := protected.Group("/events")
		{
			events.GET("/planning/:planningId", h.Event.List)
			events.POST("/planning/:planningId", h.Event.Create)
			events.PUT("/:id", h.Event.Update)
			events.DELETE("/:id", h.Event.Delete)
		}
	}

	return r
}
