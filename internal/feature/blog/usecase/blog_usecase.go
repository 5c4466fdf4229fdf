package usecase

import (
	"context"
	"strings"

	"blog_backend/internal/feature/blog/domain/entity"
)

// PostRepository abstracts the read side of the post storage.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type PostRepository interface {
	// ListPublished returns all posts ordered by publication date
	// descending, with author and category eagerly resolved.
	ListPublished(ctx context.Context) ([]entity.Post, error)

	// FindWithRelations returns a post with its author, category and full
	// comment list (each comment with its author), or ErrPostNotFound.
	FindWithRelations(ctx context.Context, id uint) (*entity.Post, error)

	// FindByID returns a post without relations, or ErrPostNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Post, error)
}

// CommentRepository abstracts the persistence layer for comments.
type CommentRepository interface {
	// Create persists a new comment to the storage.
	Create(ctx context.Context, comment *entity.Comment) error
}

// blogUsecase implements the public read side and comment submission.
type blogUsecase struct {
	posts    PostRepository
	comments CommentRepository
}

// NewBlogUsecase creates a new instance of blogUsecase.
func NewBlogUsecase(posts PostRepository, comments CommentRepository) *blogUsecase {
	return &blogUsecase{
		posts:    posts,
		comments: comments,
	}
}

// ListPublished returns every post, newest first.
// There is no draft state, so every stored post is published.
func (u *blogUsecase) ListPublished(ctx context.Context) ([]entity.Post, error) {
	return u.posts.ListPublished(ctx)
}

// GetPost returns a single post with its full entity graph.
// Comments come back unfiltered by status: visibility selection for public
// display belongs to the transport layer, not to the query.
func (u *blogUsecase) GetPost(ctx context.Context, id uint) (*entity.Post, error) {
	return u.posts.FindWithRelations(ctx, id)
}

// SubmitComment creates a pending comment on the given post.
// Every freshly submitted comment starts pending regardless of who submits
// it; only an admin moderation action moves it out of that state. Nothing
// prevents a user from commenting the same post twice.
func (u *blogUsecase) SubmitComment(ctx context.Context, postID, authorID uint, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	if _, err := u.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		Content:  content,
		Status:   entity.StatusPending,
		AuthorID: authorID,
		PostID:   postID,
	}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
