package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/admin/transport/http/dto"
	"blog_backend/internal/feature/admin/usecase"
	blogusecase "blog_backend/internal/feature/blog/usecase"
	jwtmw "blog_backend/internal/platform/jwt"
)

// ListPosts handles GET /admin/posts.
// Each item carries the expected edit and delete tokens; the listing itself
// carries the create token.
func (h *AdminHandler) ListPosts(c *gin.Context) {
	posts, err := h.admin.ListPosts(c.Request.Context())
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := dto.PostListResponse{
		Posts:       make([]dto.PostItem, 0, len(posts)),
		CreateToken: h.tokens.Token(usecase.ActionCreatePost, 0),
	}
	for i := range posts {
		p := &posts[i]
		out.Posts = append(out.Posts, dto.PostItem{
			ID:          p.ID,
			Title:       p.Title,
			Picture:     p.Picture,
			PublishedAt: p.PublishedAt,
			AuthorID:    p.AuthorID,
			CategoryID:  p.CategoryID,
			EditToken:   h.tokens.Token(usecase.ActionEditPost, p.ID),
			DeleteToken: h.tokens.Token(usecase.ActionDeletePost, p.ID),
		})
	}
	c.JSON(http.StatusOK, out)
}

// CreatePost handles POST /admin/posts.
// The acting admin becomes the author; the publication timestamp is fixed
// at creation time.
func (h *AdminHandler) CreatePost(c *gin.Context) {
	actorID := c.GetUint(jwtmw.ContextUserID)

	var req dto.PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("post validation failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.admin.CreatePost(c.Request.Context(), actorID, req.Token, usecase.PostInput{
		Title:      req.Title,
		Content:    req.Content,
		Picture:    req.Picture,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		if errors.Is(err, blogusecase.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		slog.Error("failed to create post", "error", err, "actor_id", actorID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if post == nil {
		// Token mismatch: action skipped, nothing to report
		c.Status(http.StatusNoContent)
		return
	}

	slog.Info("post created", "post_id", post.ID, "actor_id", actorID)
	c.JSON(http.StatusCreated, gin.H{"id": post.ID, "message": "post created"})
}

// UpdatePost handles PUT /admin/posts/:id.
func (h *AdminHandler) UpdatePost(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req dto.PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("post validation failed", "error", err, "post_id", id)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.admin.UpdatePost(c.Request.Context(), id, req.Token, usecase.PostInput{
		Title:      req.Title,
		Content:    req.Content,
		Picture:    req.Picture,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		switch {
		case errors.Is(err, blogusecase.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, blogusecase.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		default:
			slog.Error("failed to update post", "error", err, "post_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	if post == nil {
		c.Status(http.StatusNoContent)
		return
	}

	slog.Info("post updated", "post_id", id)
	c.JSON(http.StatusOK, gin.H{"id": post.ID, "message": "post updated"})
}

// DeletePost handles DELETE /admin/posts/:id.
// Deletes the post and its comments; a bad token silently skips.
func (h *AdminHandler) DeletePost(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := h.admin.DeletePost(c.Request.Context(), id, actionToken(c)); err != nil {
		if errors.Is(err, blogusecase.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		slog.Error("failed to delete post", "error", err, "post_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
