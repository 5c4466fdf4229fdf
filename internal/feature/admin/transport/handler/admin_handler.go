// Package handler provides the HTTP handlers for the back-office.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/admin/transport/http/dto"
	"blog_backend/internal/feature/admin/usecase"
	authentity "blog_backend/internal/feature/auth/domain/entity"
	blogentity "blog_backend/internal/feature/blog/domain/entity"
)

// AdminUsecase defines the back-office operations consumed by the handler.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*usecase.DashboardCounts, error)

	ListPosts(ctx context.Context) ([]blogentity.Post, error)
	CreatePost(ctx context.Context, actorID uint, token string, in usecase.PostInput) (*blogentity.Post, error)
	UpdatePost(ctx context.Context, id uint, token string, in usecase.PostInput) (*blogentity.Post, error)
	DeletePost(ctx context.Context, id uint, token string) error

	ListCategories(ctx context.Context) ([]blogentity.Category, error)
	CreateCategory(ctx context.Context, token string, in usecase.CategoryInput) (*blogentity.Category, error)
	UpdateCategory(ctx context.Context, id uint, token string, in usecase.CategoryInput) (*blogentity.Category, error)
	DeleteCategory(ctx context.Context, id uint, token string) error

	ListUsers(ctx context.Context) ([]authentity.User, error)
	ToggleActive(ctx context.Context, userID, requesterID uint, token string) (*authentity.User, error)

	ListComments(ctx context.Context) ([]blogentity.Comment, error)
	ApproveComment(ctx context.Context, id uint, token string) error
	RejectComment(ctx context.Context, id uint, token string) error
}

// AdminHandler handles the back-office endpoints. All routes behind it are
// guarded by the JWT and admin-role middleware; mutating requests carry an
// anti-forgery token which the usecase verifies. A mismatching token makes
// the mutation a silent no-op, so these handlers respond as if the page had
// simply been reloaded.
type AdminHandler struct {
	admin  AdminUsecase
	tokens usecase.ActionTokens
}

// NewAdminHandler creates a new instance of AdminHandler.
func NewAdminHandler(admin AdminUsecase, tokens usecase.ActionTokens) *AdminHandler {
	return &AdminHandler{admin: admin, tokens: tokens}
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	counts, err := h.admin.Dashboard(c.Request.Context())
	if err != nil {
		slog.Error("failed to load dashboard", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.DashboardResponse{
		PostsCount:    counts.Posts,
		UsersCount:    counts.Users,
		CommentsCount: counts.Comments,
	})
}

// actionToken extracts the anti-forgery token of a body-less request.
// DELETE and action endpoints accept it as the _token query parameter, the
// JSON equivalent of the original hidden form field.
func actionToken(c *gin.Context) string {
	if t := c.Query("_token"); t != "" {
		return t
	}
	var req dto.ActionReq
	if err := c.ShouldBindJSON(&req); err == nil {
		return req.Token
	}
	return ""
}

// parseID parses a positive decimal entity id from a path parameter.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
