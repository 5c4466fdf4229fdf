// Package adapters provides the repository implementations for the blog feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/usecase"
)

// postGorm is the GORM implementation of the post repositories.
type postGorm struct {
	db *gorm.DB
}

// Compile-time check that postGorm satisfies the blog read interface.
// The back-office consumes it through the caching decorator in
// platform/cache, which asserts the admin interface.
var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostGorm creates a new instance of postGorm with the given gorm.DB
// connection. Constructor for dependency injection.
func NewPostGorm(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// ListPublished returns all posts ordered by publication date descending.
// Author and category are resolved eagerly to avoid per-post lookups.
func (r *postGorm) ListPublished(ctx context.Context) ([]entity.Post, error) {
	var posts []entity.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Order("published_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FindWithRelations returns a post with author, category and the full
// comment list, each comment resolved with its own author. Comments are not
// filtered by status here; visibility selection is the caller's concern.
func (r *postGorm) FindWithRelations(ctx context.Context, id uint) (*entity.Post, error) {
	var post entity.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Where("id = ?", id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindByID retrieves a post without relations.
// It returns usecase.ErrPostNotFound when the post does not exist.
func (r *postGorm) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var post entity.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create adds a post to the database.
func (r *postGorm) Create(ctx context.Context, post *entity.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// Update persists all fields of an existing post.
func (r *postGorm) Update(ctx context.Context, post *entity.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes a post and its comments in a single transaction.
// The post owns its comments, so the cascade runs here as an explicit
// aggregate deletion rule rather than relying on database-engine behavior.
func (r *postGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post entity.Post
		if err := tx.Where("id = ?", id).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrPostNotFound
			}
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&entity.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

// Count returns the total number of posts.
func (r *postGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Post{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
