// Package handler provides HTTP handlers for the planning feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"twitchplanner/internal/api"
	"twitchplanner/internal/feature/planning/domain/entity"
	"twitchplanner/internal/feature/planning/transport/http/dto"
	"twitchplanner/internal/feature/planning/usecase"
	jwtmw "twitchplanner/internal/platform/jwt"
)

// PlanningUsecase defines the usecase operations the planning handlers
// depend on.
type PlanningUsecase interface {
	// List returns the user's plannings, newest first.
	List(ctx context.Context, userID uint) ([]*entity.Planning, error)
	// Get returns one owned planning with its events.
	Get(ctx context.Context, userID, id uint) (*entity.Planning, error)
	// Create validates the date range and persists a new planning.
	Create(ctx context.Context, userID uint, params usecase.CreatePlanningParams) (*entity.Planning, error)
	// Update applies a partial update, re-validating the merged date range.
	Update(ctx context.Context, userID, id uint, params usecase.UpdatePlanningParams) (*entity.Planning, error)
	// Delete removes an owned planning, cascading to its events.
	Delete(ctx context.Context, userID, id uint) error
	// WeekView returns the weekly grid projection for one planning.
	WeekView(ctx context.Context, userID, id uint) ([]usecase.WeekDay, error)
}

// PlanningHandler handles HTTP requests for plannings.
type PlanningHandler struct {
	plannings PlanningUsecase
}

// NewPlanningHandler creates a new PlanningHandler.
func NewPlanningHandler(plannings PlanningUsecase) *PlanningHandler {
	return &PlanningHandler{plannings: plannings}
}

// List handles GET /plannings.
func (h *PlanningHandler) List(c *gin.Context) {
	plannings, err := h.plannings.List(c.Request.Context(), jwtmw.UserID(c))
	if err != nil {
		writePlanningError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plannings": dto.NewPlanningListResponse(plannings)})
}

// Get handles GET /plannings/:id.
func (h *PlanningHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	planning, err := h.plannings.Get(c.Request.Context(), jwtmw.UserID(c), id)
	if err != nil {
		writePlanningError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"planning": dto.NewPlanningResponse(planning)})
}

// Create handles POST /plannings.
func (h *PlanningHandler) Create(c *gin.Context) {
	var req dto.CreatePlanningReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("planning create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	planning, err := h.plannings.Create(c.Request.Context(), jwtmw.UserID(c), usecase.CreatePlanningParams{
		Title:     req.Title,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		writePlanningError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "planning created",
		"planning": dto.NewPlanningResponse(planning),
	})
}

// Update handles PUT /plannings/:id.
func (h *PlanningHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePlanningReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("planning update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	params := usecase.UpdatePlanningParams{Title: req.Title}
	if req.StartDate != nil {
		start, err := dto.ParseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		params.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := dto.ParseDate(*req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		params.EndDate = &end
	}

	planning, err := h.plannings.Update(c.Request.Context(), jwtmw.UserID(c), id, params)
	if err != nil {
		writePlanningError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "planning updated",
		"planning": dto.NewPlanningResponse(planning),
	})
}

// Delete handles DELETE /plannings/:id.
func (h *PlanningHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.plannings.Delete(c.Request.Context(), jwtmw.UserID(c), id); err != nil {
		writePlanningError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "planning deleted"})
}

// Week handles GET /plannings/:id/week, the export grid projection.
func (h *PlanningHandler) Week(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	days, err := h.plannings.WeekView(c.Request.Context(), jwtmw.UserID(c), id)
	if err != nil {
		writePlanningError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"week": dto.NewWeekViewResponse(days)})
}

// parseID reads the :id path parameter, answering 400 itself on garbage.
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// writePlanningError maps planning usecase errors to HTTP responses.
func writePlanningError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPlanningNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrDatesRequired),
		errors.Is(err, usecase.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("planning request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
