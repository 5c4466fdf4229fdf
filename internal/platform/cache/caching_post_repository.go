// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	adminusecase "blog_backend/internal/feature/admin/usecase"
	"blog_backend/internal/feature/blog/domain/entity"
	blogusecase "blog_backend/internal/feature/blog/usecase"
)

// PostRepository is the contract the decorated repository must fulfil.
// It is the union of the blog read side and the back-office write side.
type PostRepository interface {
	ListPublished(ctx context.Context) ([]entity.Post, error)
	FindWithRelations(ctx context.Context, id uint) (*entity.Post, error)
	FindByID(ctx context.Context, id uint) (*entity.Post, error)
	Create(ctx context.Context, post *entity.Post) error
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// CachingPostRepository decorates a PostRepository with Redis caching of the
// published-post listing. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository. Every write
// invalidates the cached listing; reads of a single post pass through.
type CachingPostRepository struct {
	inner     PostRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var (
	_ blogusecase.PostRepository  = (*CachingPostRepository)(nil)
	_ adminusecase.PostRepository = (*CachingPostRepository)(nil)
)

// NewCachingPostRepository decorates a PostRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "posts". A nil Redis client disables caching entirely.
func NewCachingPostRepository(rdb *redis.Client, ttl time.Duration, inner PostRepository, namespace string) *CachingPostRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "posts"
	}
	return &CachingPostRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListPublished retrieves the published listing, checking the cache first
// and falling back to the database.
func (c *CachingPostRepository) ListPublished(ctx context.Context) ([]entity.Post, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListPublished(ctx)
	}

	key := c.listingKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Post
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindWithRelations passes through to the underlying repository.
func (c *CachingPostRepository) FindWithRelations(ctx context.Context, id uint) (*entity.Post, error) {
	return c.inner.FindWithRelations(ctx, id)
}

// FindByID passes through to the underlying repository.
func (c *CachingPostRepository) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	return c.inner.FindByID(ctx, id)
}

// Create inserts a post and invalidates the cached listing.
func (c *CachingPostRepository) Create(ctx context.Context, post *entity.Post) error {
	if err := c.inner.Create(ctx, post); err != nil {
		return err
	}
	return c.InvalidateListing(ctx)
}

// Update persists a post and invalidates the cached listing.
func (c *CachingPostRepository) Update(ctx context.Context, post *entity.Post) error {
	if err := c.inner.Update(ctx, post); err != nil {
		return err
	}
	return c.InvalidateListing(ctx)
}

// Delete removes a post and invalidates the cached listing.
func (c *CachingPostRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	return c.InvalidateListing(ctx)
}

// Count passes through to the underlying repository.
func (c *CachingPostRepository) Count(ctx context.Context) (int64, error) {
	return c.inner.Count(ctx)
}

// InvalidateListing drops the cached published listing. Best effort: a
// failed deletion only shortens cache coherence to the TTL.
func (c *CachingPostRepository) InvalidateListing(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	_ = c.rdb.Del(ctx, c.listingKey()).Err()
	return nil
}

// listingKey generates the cache key of the published listing.
func (c *CachingPostRepository) listingKey() string {
	return c.namespace + ":published"
}
