// Package handler provides HTTP handlers for the event feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"twitchplanner/internal/api"
	"twitchplanner/internal/feature/event/domain/entity"
	"twitchplanner/internal/feature/event/transport/http/dto"
	"twitchplanner/internal/feature/event/usecase"
	jwtmw "twitchplanner/internal/platform/jwt"
)

// EventUsecase defines the usecase operations the event handlers depend on.
type EventUsecase interface {
	// List returns a planning's events ordered by day of week, then start time.
	List(ctx context.Context, userID, planningID uint) ([]*entity.Event, error)
	// Create validates and persists a new event under an owned planning.
	Create(ctx context.Context, userID, planningID uint, params usecase.CreateEventParams) (*entity.Event, error)
	// Update applies a partial update, re-validating the merged record.
	Update(ctx context.Context, userID, id uint, params usecase.UpdateEventParams) (*entity.Event, error)
	// Delete removes one event whose planning the user owns.
	Delete(ctx context.Context, userID, id uint) error
}

// EventHandler handles HTTP requests for events.
type EventHandler struct {
	events EventUsecase
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(events EventUsecase) *EventHandler {
	return &EventHandler{events: events}
}

// List handles GET /events/planning/:planningId.
func (h *EventHandler) List(c *gin.Context) {
	planningID, ok := parseID(c, "planningId")
	if !ok {
		return
	}

	events, err := h.events.List(c.Request.Context(), jwtmw.UserID(c), planningID)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": dto.NewEventListResponse(events)})
}

// Create handles POST /events/planning/:planningId.
func (h *EventHandler) Create(c *gin.Context) {
	planningID, ok := parseID(c, "planningId")
	if !ok {
		return
	}

	var req dto.CreateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("event create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.events.Create(c.Request.Context(), jwtmw.UserID(c), planningID, usecase.CreateEventParams{
		GameName:    req.GameName,
		GameImage:   req.GameImage,
		StreamTitle: req.StreamTitle,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		writeEventError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "event created",
		"event":   dto.NewEventResponse(event),
	})
}

// Update handles PUT /events/:id.
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("event update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.events.Update(c.Request.Context(), jwtmw.UserID(c), id, usecase.UpdateEventParams{
		GameName:    req.GameName,
		GameImage:   req.GameImage,
		StreamTitle: req.StreamTitle,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		writeEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "event updated",
		"event":   dto.NewEventResponse(event),
	})
}

// Delete handles DELETE /events/:id.
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.events.Delete(c.Request.Context(), jwtmw.UserID(c), id); err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "event deleted"})
}

// parseID reads a numeric path parameter, answering 400 itself on garbage.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// writeEventError maps event usecase errors to HTTP responses.
func writeEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEventNotFound),
		errors.Is(err, usecase.ErrPlanningNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrGameNameRequired),
		errors.Is(err, usecase.ErrInvalidDayOfWeek),
		errors.Is(err, usecase.ErrInvalidStartTime),
		errors.Is(err, usecase.ErrInvalidEndTime),
		errors.Is(err, usecase.ErrEndBeforeStart),
		errors.Is(err, usecase.ErrInvalidGameImage):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("event request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
