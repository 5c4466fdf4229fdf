// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/auth/transport/http/dto"
	"blog_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations consumed by the handler.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new inactive member.
	Signup(ctx context.Context, email, password, firstName, lastName string) error
	// Login authenticates a user and returns a JWT token on success.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles the user registration endpoint.
// - binds the request JSON to SignupReq, 400 on validation failure
// - 409 when the user cannot be created (duplicate email etc.)
// - 201 on success; the account stays inactive until an admin activates it
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName); err != nil {
		// Do not expose the actual error to prevent user enumeration
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, gin.H{"error": "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"message": "account created, awaiting activation"})
}

// Login handles the user login endpoint.
// - binds the request JSON to LoginReq, 400 on validation failure
// - 403 with an explanatory reason when the account is not activated
// - 401 on bad credentials
// - 200 with a JWT token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// The activation gate failure is deliberately distinct from bad
		// credentials and carries its reason to the user.
		if errors.Is(err, usecase.ErrAccountInactive) {
			slog.Warn("login denied for inactive account", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"token": token})
}
