// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"twitchplanner/internal/api"
	"twitchplanner/internal/feature/auth/domain/entity"
	"twitchplanner/internal/feature/auth/transport/http/dto"
	"twitchplanner/internal/feature/auth/usecase"
	jwtmw "twitchplanner/internal/platform/jwt"
)

// AuthUsecase defines the usecase operations the auth handlers depend on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account and opens a session for it.
	Register(ctx context.Context, email, password string, meta usecase.SessionMeta) (*entity.User, string, error)
	// Login authenticates a user and returns a signed session token.
	Login(ctx context.Context, email, password string, meta usecase.SessionMeta) (*entity.User, string, error)
	// Logout revokes the session referenced by the token.
	Logout(ctx context.Context, token string) error
	// GetUser returns the user with the given ID.
	GetUser(ctx context.Context, id uint) (*entity.User, error)
}

// AuthHandler handles HTTP requests for registration, login, logout and the
// authenticated-profile probe.
type AuthHandler struct {
	auth         AuthUsecase
	cookieSecure bool
	cookieMaxAge int
}

// NewAuthHandler creates a new AuthHandler. cookieSecure marks the session
// cookie Secure (production only); cookieMaxAge is its lifetime in seconds.
func NewAuthHandler(auth AuthUsecase, cookieSecure bool, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure, cookieMaxAge: cookieMaxAge}
}

// Register handles the POST /auth/register endpoint.
// - 400 on malformed body, bad email format or weak password
// - 409 on duplicate email
// - 201 with the public user and a fresh session cookie on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, sessionMeta(c))
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		writeAuthError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{
		"message": "user created",
		"user":    dto.NewUserResponse(user),
	})
}

// Login handles the POST /auth/login endpoint.
// Unknown email and wrong password produce the same 401 response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, sessionMeta(c))
	if err != nil {
		// Never reveal which of email or password was wrong.
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}

	h.setSessionCookie(c, token)
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"user":    dto.NewUserResponse(user),
	})
}

// Logout handles the POST /auth/logout endpoint. The server-side session is
// revoked and the cookie cleared; an absent or invalid cookie still gets 200.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(jwtmw.CookieName); err == nil && token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			slog.Error("session revocation failed", "error", err)
		}
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
}

// Me handles the GET /auth/me endpoint for the authenticated caller.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.GetUser(c.Request.Context(), jwtmw.UserID(c))
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": dto.NewUserResponse(user)})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(jwtmw.CookieName, token, h.cookieMaxAge, "/", "", h.cookieSecure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(jwtmw.CookieName, "", -1, "/", "", h.cookieSecure, true)
}

// sessionMeta captures the client details stored with a new session.
func sessionMeta(c *gin.Context) usecase.SessionMeta {
	return usecase.SessionMeta{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
}

// writeAuthError maps auth usecase errors to HTTP responses. Unexpected
// errors are logged and returned as a generic 500.
func writeAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrWeakPassword), errors.Is(err, usecase.ErrInvalidLogo):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("auth request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
