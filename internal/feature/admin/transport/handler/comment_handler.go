package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/admin/transport/http/dto"
	"blog_backend/internal/feature/admin/usecase"
	blogusecase "blog_backend/internal/feature/blog/usecase"
)

// ListComments handles GET /admin/comments: the moderation queue.
// Pending and rejected comments appear only here, never on the public view.
func (h *AdminHandler) ListComments(c *gin.Context) {
	comments, err := h.admin.ListComments(c.Request.Context())
	if err != nil {
		slog.Error("failed to list comments", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := dto.CommentListResponse{Comments: make([]dto.CommentItem, 0, len(comments))}
	for i := range comments {
		cm := &comments[i]
		out.Comments = append(out.Comments, dto.CommentItem{
			ID:           cm.ID,
			Content:      cm.Content,
			Status:       string(cm.Status),
			AuthorID:     cm.AuthorID,
			AuthorName:   cm.Author.FullName(),
			PostID:       cm.PostID,
			CreatedAt:    cm.CreatedAt,
			ApproveToken: h.tokens.Token(usecase.ActionApprove, cm.ID),
			RejectToken:  h.tokens.Token(usecase.ActionReject, cm.ID),
		})
	}
	c.JSON(http.StatusOK, out)
}

// ApproveComment handles POST /admin/comments/:id/approve.
func (h *AdminHandler) ApproveComment(c *gin.Context) {
	h.moderate(c, h.admin.ApproveComment)
}

// RejectComment handles POST /admin/comments/:id/reject.
func (h *AdminHandler) RejectComment(c *gin.Context) {
	h.moderate(c, h.admin.RejectComment)
}

// moderate runs a moderation transition. Both transitions share the same
// transport behavior: 404 for unknown comments, silent skip on bad token.
func (h *AdminHandler) moderate(c *gin.Context, transition func(ctx context.Context, id uint, token string) error) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	if err := transition(c.Request.Context(), id, actionToken(c)); err != nil {
		if errors.Is(err, blogusecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		slog.Error("failed to moderate comment", "error", err, "comment_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
