package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/auth/transport/http/dto"
	"blog_backend/internal/feature/auth/usecase"
	jwtmw "blog_backend/internal/platform/jwt"
)

// ProfileUsecase defines the profile operations consumed by the handler.
type ProfileUsecase interface {
	// Profile returns the profile of the given user.
	Profile(ctx context.Context, userID uint) (*entity.User, error)
	// UpdateProfile updates display name and avatar of the given user.
	UpdateProfile(ctx context.Context, userID uint, firstName, lastName, profilePicture string) (*entity.User, error)
}

// ProfileHandler handles HTTP requests for the authenticated user's profile.
// The caller identity always comes from the verified JWT, never from the
// request body.
type ProfileHandler struct {
	profile ProfileUsecase
}

// NewProfileHandler creates a new instance of ProfileHandler.
func NewProfileHandler(profile ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Show handles GET /profile.
func (h *ProfileHandler) Show(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	user, err := h.profile.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("failed to load profile", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Update handles PUT /profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profile.UpdateProfile(c.Request.Context(), userID, req.FirstName, req.LastName, req.ProfilePicture)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("failed to update profile", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	slog.Info("profile updated", "user_id", userID)
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
