package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/admin/transport/http/dto"
	"blog_backend/internal/feature/admin/usecase"
	blogusecase "blog_backend/internal/feature/blog/usecase"
)

// ListCategories handles GET /admin/categories.
func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.admin.ListCategories(c.Request.Context())
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := dto.CategoryListResponse{
		Categories:  make([]dto.CategoryItem, 0, len(categories)),
		CreateToken: h.tokens.Token(usecase.ActionCreateCategory, 0),
	}
	for i := range categories {
		cat := &categories[i]
		out.Categories = append(out.Categories, dto.CategoryItem{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			EditToken:   h.tokens.Token(usecase.ActionEditCategory, cat.ID),
			DeleteToken: h.tokens.Token(usecase.ActionDeleteCategory, cat.ID),
		})
	}
	c.JSON(http.StatusOK, out)
}

// CreateCategory handles POST /admin/categories.
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("category validation failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.admin.CreateCategory(c.Request.Context(), req.Token, usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, blogusecase.ErrCategoryNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		slog.Error("failed to create category", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if category == nil {
		c.Status(http.StatusNoContent)
		return
	}

	slog.Info("category created", "category_id", category.ID, "name", category.Name)
	c.JSON(http.StatusCreated, gin.H{"id": category.ID, "message": "category created"})
}

// UpdateCategory handles PUT /admin/categories/:id.
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("category validation failed", "error", err, "category_id", id)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.admin.UpdateCategory(c.Request.Context(), id, req.Token, usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, blogusecase.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		case errors.Is(err, blogusecase.ErrCategoryNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			slog.Error("failed to update category", "error", err, "category_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	if category == nil {
		c.Status(http.StatusNoContent)
		return
	}

	slog.Info("category updated", "category_id", id)
	c.JSON(http.StatusOK, gin.H{"id": category.ID, "message": "category updated"})
}

// DeleteCategory handles DELETE /admin/categories/:id.
// The category and every post under it (with their comments) are removed.
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	if err := h.admin.DeleteCategory(c.Request.Context(), id, actionToken(c)); err != nil {
		if errors.Is(err, blogusecase.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		slog.Error("failed to delete category", "error", err, "category_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
