package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/admin/transport/http/dto"
	"blog_backend/internal/feature/admin/usecase"
	authusecase "blog_backend/internal/feature/auth/usecase"
	jwtmw "blog_backend/internal/platform/jwt"
)

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := dto.UserListResponse{Users: make([]dto.UserItem, 0, len(users))}
	for i := range users {
		u := &users[i]
		out.Users = append(out.Users, dto.UserItem{
			ID:          u.ID,
			Email:       u.Email,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Role:        string(u.Role),
			IsActive:    u.IsActive,
			CreatedAt:   u.CreatedAt,
			ToggleToken: h.tokens.Token(usecase.ActionToggleActive, u.ID),
		})
	}
	c.JSON(http.StatusOK, out)
}

// ToggleUserActive handles POST /admin/users/:id/toggle-active.
// Toggling your own account is refused with an explicit error; a bad token
// silently skips instead.
func (h *AdminHandler) ToggleUserActive(c *gin.Context) {
	requesterID := c.GetUint(jwtmw.ContextUserID)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.admin.ToggleActive(c.Request.Context(), id, requesterID, actionToken(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSelfDeactivation):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, authusecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			slog.Error("failed to toggle user", "error", err, "user_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	if user == nil {
		c.Status(http.StatusNoContent)
		return
	}

	slog.Info("user activation toggled", "user_id", id, "is_active", user.IsActive, "actor_id", requesterID)
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "is_active": user.IsActive})
}
