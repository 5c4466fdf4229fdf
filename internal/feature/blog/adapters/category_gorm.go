package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	adminusecase "blog_backend/internal/feature/admin/usecase"
	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/usecase"
)

// categoryGorm is the GORM implementation of the category repository.
type categoryGorm struct {
	db *gorm.DB
}

var _ adminusecase.CategoryRepository = (*categoryGorm)(nil)

// NewCategoryGorm creates a new instance of categoryGorm with the given
// gorm.DB connection. Constructor for dependency injection.
func NewCategoryGorm(db *gorm.DB) *categoryGorm {
	return &categoryGorm{db: db}
}

// ListOrderedByName returns all categories ordered alphabetically.
func (r *categoryGorm) ListOrderedByName(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByID retrieves a category by ID.
// It returns usecase.ErrCategoryNotFound when the category does not exist.
func (r *categoryGorm) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create adds a category to the database.
// It returns usecase.ErrCategoryNameTaken when the name already exists.
func (r *categoryGorm) Create(ctx context.Context, category *entity.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

// Update persists name and description changes of a category.
func (r *categoryGorm) Update(ctx context.Context, category *entity.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

// Delete removes a category, all posts that reference it and the comments
// of those posts, in a single transaction. The category owns its posts, so
// the cascade runs here as an explicit aggregate deletion rule.
func (r *categoryGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category entity.Category
		if err := tx.Where("id = ?", id).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrCategoryNotFound
			}
			return err
		}

		var postIDs []uint
		if err := tx.Model(&entity.Post{}).Where("category_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&entity.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", id).Delete(&entity.Post{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&category).Error
	})
}

// isUniqueViolation reports whether err is a unique-constraint violation.
// PostgreSQL error 23505: duplicate key value violates unique constraint.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
