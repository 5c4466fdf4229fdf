package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	adminusecase "blog_backend/internal/feature/admin/usecase"
	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/usecase"
)

// commentGorm is the GORM implementation of the comment repositories.
type commentGorm struct {
	db *gorm.DB
}

var (
	_ usecase.CommentRepository      = (*commentGorm)(nil)
	_ adminusecase.CommentRepository = (*commentGorm)(nil)
)

// NewCommentGorm creates a new instance of commentGorm with the given
// gorm.DB connection. Constructor for dependency injection.
func NewCommentGorm(db *gorm.DB) *commentGorm {
	return &commentGorm{db: db}
}

// Create adds a comment to the database.
func (r *commentGorm) Create(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindByID retrieves a comment by ID.
// It returns usecase.ErrCommentNotFound when the comment does not exist.
func (r *commentGorm) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var comment entity.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// UpdateStatus sets the moderation status of a comment.
// The write is unconditional on the current status, which makes approve and
// reject idempotent and reversible from any state.
func (r *commentGorm) UpdateStatus(ctx context.Context, id uint, status entity.CommentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Comment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrCommentNotFound
	}
	return nil
}

// ListOrderedByCreatedAt returns all comments, newest first, with author
// and post resolved for the back-office moderation listing.
func (r *commentGorm) ListOrderedByCreatedAt(ctx context.Context) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Count returns the total number of comments.
func (r *commentGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Comment{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
