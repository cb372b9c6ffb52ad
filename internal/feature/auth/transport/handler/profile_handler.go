package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"twitchplanner/internal/api"
	"twitchplanner/internal/feature/auth/domain/entity"
	"twitchplanner/internal/feature/auth/transport/http/dto"
	"twitchplanner/internal/feature/auth/usecase"
	jwtmw "twitchplanner/internal/platform/jwt"
)

// ProfileUsecase defines the usecase operations the profile handlers depend on.
type ProfileUsecase interface {
	// GetUser returns the user with the given ID.
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	// UpdateProfile applies a partial profile update, validating the merged result.
	UpdateProfile(ctx context.Context, userID uint, params usecase.UpdateProfileParams) (*entity.User, error)
	// DeleteAccount removes the user and cascades to all owned resources.
	DeleteAccount(ctx context.Context, userID uint) error
}

// ProfileHandler handles HTTP requests for the caller's own account.
type ProfileHandler struct {
	profile      ProfileUsecase
	cookieSecure bool
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profile ProfileUsecase, cookieSecure bool) *ProfileHandler {
	return &ProfileHandler{profile: profile, cookieSecure: cookieSecure}
}

// Get handles the GET /profile endpoint.
func (h *ProfileHandler) Get(c *gin.Context) {
	user, err := h.profile.GetUser(c.Request.Context(), jwtmw.UserID(c))
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": dto.NewUserResponse(user)})
}

// Update handles the PUT /profile endpoint. Fields absent from the body are
// left untouched; an empty logo clears the stored one.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.profile.UpdateProfile(c.Request.Context(), jwtmw.UserID(c), usecase.UpdateProfileParams{
		Email:     req.Email,
		Password:  req.Password,
		TwitchURL: req.TwitchURL,
		Logo:      req.Logo,
	})
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "profile updated",
		"user":    dto.NewUserResponse(user),
	})
}

// Delete handles the DELETE /profile endpoint. The account, its plannings and
// their events are removed, every session is revoked and the cookie cleared.
func (h *ProfileHandler) Delete(c *gin.Context) {
	userID := jwtmw.UserID(c)
	if err := h.profile.DeleteAccount(c.Request.Context(), userID); err != nil {
		writeAuthError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(jwtmw.CookieName, "", -1, "/", "", h.cookieSecure, true)

	slog.Info("account deleted", "user_id", userID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "account deleted"})
}
