// Package handler provides the HTTP handlers for the public blog.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/transport/http/dto"
	"blog_backend/internal/feature/blog/usecase"
	jwtmw "blog_backend/internal/platform/jwt"
)

// BlogUsecase defines the public blog operations consumed by the handler.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type BlogUsecase interface {
	// ListPublished returns every post, newest first.
	ListPublished(ctx context.Context) ([]entity.Post, error)
	// GetPost returns a single post with its full entity graph.
	GetPost(ctx context.Context, id uint) (*entity.Post, error)
	// SubmitComment creates a pending comment on the given post.
	SubmitComment(ctx context.Context, postID, authorID uint, content string) (*entity.Comment, error)
}

// BlogHandler handles the public blog endpoints.
type BlogHandler struct {
	blog BlogUsecase
}

// NewBlogHandler creates a new instance of BlogHandler.
func NewBlogHandler(blog BlogUsecase) *BlogHandler {
	return &BlogHandler{blog: blog}
}

// Index handles GET /blog: the published-post listing.
func (h *BlogHandler) Index(c *gin.Context) {
	posts, err := h.blog.ListPublished(c.Request.Context())
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]dto.PostSummary, 0, len(posts))
	for i := range posts {
		out = append(out, dto.NewPostSummary(&posts[i]))
	}
	c.JSON(http.StatusOK, gin.H{"posts": out})
}

// Show handles GET /blog/:id: a single post with its approved comments.
// The query layer returns the comment list unfiltered; selecting approved
// comments for public display happens here, at the presentation boundary.
func (h *BlogHandler) Show(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, err := h.blog.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		slog.Error("failed to load post", "error", err, "post_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	detail := dto.PostDetail{
		PostSummary: dto.NewPostSummary(post),
		Comments:    make([]dto.CommentResponse, 0, len(post.Comments)),
	}
	for i := range post.Comments {
		if !post.Comments[i].IsApproved() {
			continue
		}
		detail.Comments = append(detail.Comments, dto.NewCommentResponse(&post.Comments[i]))
	}
	c.JSON(http.StatusOK, detail)
}

// SubmitComment handles POST /blog/:id/comments.
// Requires authentication; the comment is stored pending and becomes
// visible only after moderation.
func (h *BlogHandler) SubmitComment(c *gin.Context) {
	authorID := c.GetUint(jwtmw.ContextUserID)
	if authorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	postID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req dto.CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("comment validation failed", "error", err, "post_id", postID)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.blog.SubmitComment(c.Request.Context(), postID, authorID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, usecase.ErrEmptyContent):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("failed to submit comment", "error", err, "post_id", postID, "author_id", authorID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	slog.Info("comment submitted", "comment_id", comment.ID, "post_id", postID, "author_id", authorID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "comment saved, it will be visible after moderation",
		"id":      comment.ID,
		"status":  string(comment.Status),
	})
}

// parseID parses a positive decimal entity id from a path parameter.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
