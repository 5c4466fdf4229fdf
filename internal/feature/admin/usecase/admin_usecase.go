package usecase

import (
	"context"
	"fmt"
	"time"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	blogentity "blog_backend/internal/feature/blog/domain/entity"
)

// Action names used to derive per-action-per-entity tokens.
// They match the token identifiers of the original back-office forms.
const (
	ActionCreatePost     = "create-post"
	ActionEditPost       = "edit-post"
	ActionDeletePost     = "delete"
	ActionCreateCategory = "create-category"
	ActionEditCategory   = "edit-category"
	ActionDeleteCategory = "delete-category"
	ActionToggleActive   = "toggle-active"
	ActionApprove        = "approve"
	ActionReject         = "reject"
)

// PostRepository abstracts post persistence for the back-office.
// Implemented by the blog feature's GORM adapter wrapped in the caching
// decorator; interfaces live with the consumer per Go convention.
type PostRepository interface {
	ListPublished(ctx context.Context) ([]blogentity.Post, error)
	FindByID(ctx context.Context, id uint) (*blogentity.Post, error)
	Create(ctx context.Context, post *blogentity.Post) error
	Update(ctx context.Context, post *blogentity.Post) error
	// Delete removes the post and its comments in one transaction.
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	// InvalidateListing drops any cached published listing. Called after
	// mutations that bypass the post repository, such as category cascades.
	InvalidateListing(ctx context.Context) error
}

// CategoryRepository abstracts category persistence for the back-office.
type CategoryRepository interface {
	ListOrderedByName(ctx context.Context) ([]blogentity.Category, error)
	FindByID(ctx context.Context, id uint) (*blogentity.Category, error)
	Create(ctx context.Context, category *blogentity.Category) error
	Update(ctx context.Context, category *blogentity.Category) error
	// Delete removes the category, its posts and their comments in one
	// transaction. The cascade is an explicit aggregate deletion rule, not
	// database-engine behavior.
	Delete(ctx context.Context, id uint) error
}

// CommentRepository abstracts comment persistence for the back-office.
type CommentRepository interface {
	ListOrderedByCreatedAt(ctx context.Context) ([]blogentity.Comment, error)
	FindByID(ctx context.Context, id uint) (*blogentity.Comment, error)
	UpdateStatus(ctx context.Context, id uint, status blogentity.CommentStatus) error
	Count(ctx context.Context) (int64, error)
}

// UserRepository abstracts user persistence for the back-office.
type UserRepository interface {
	ListOrderedByCreatedAt(ctx context.Context) ([]authentity.User, error)
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
	Update(ctx context.Context, user *authentity.User) error
	Count(ctx context.Context) (int64, error)
}

// ActionTokens verifies the anti-forgery token attached to every mutating
// back-office action.
type ActionTokens interface {
	// Token returns the expected token for an action on an entity.
	Token(action string, id uint) string
	// Valid reports whether the supplied token matches the expected one.
	Valid(action string, id uint, token string) bool
}

// DashboardCounts aggregates the entity totals shown on the dashboard.
type DashboardCounts struct {
	Posts    int64
	Users    int64
	Comments int64
}

// PostInput carries the editable fields of a post.
type PostInput struct {
	Title      string
	Content    string
	Picture    string
	CategoryID uint
}

// CategoryInput carries the editable fields of a category.
type CategoryInput struct {
	Name        string
	Description string
}

// adminUsecase coordinates the moderation and activation state machines and
// the content CRUD in response to back-office commands. The acting admin is
// always an explicit parameter; there is no ambient current-user state.
//
// Every mutating method takes the caller-supplied action token. On mismatch
// the action is silently skipped: the method returns its zero value and a
// nil error so the caller re-renders the unchanged listing. This soft
// failure mirrors the original back-office and is kept for testability.
type adminUsecase struct {
	posts      PostRepository
	categories CategoryRepository
	comments   CommentRepository
	users      UserRepository
	tokens     ActionTokens
}

// NewAdminUsecase creates a new instance of adminUsecase.
func NewAdminUsecase(posts PostRepository, categories CategoryRepository,
	comments CommentRepository, users UserRepository, tokens ActionTokens) *adminUsecase {
	return &adminUsecase{
		posts:      posts,
		categories: categories,
		comments:   comments,
		users:      users,
		tokens:     tokens,
	}
}

// Dashboard returns the entity counts for the back-office landing page.
func (u *adminUsecase) Dashboard(ctx context.Context) (*DashboardCounts, error) {
	posts, err := u.posts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}
	users, err := u.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	comments, err := u.comments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	return &DashboardCounts{Posts: posts, Users: users, Comments: comments}, nil
}

// --- Posts ---

// ListPosts returns all posts ordered by publication date descending.
func (u *adminUsecase) ListPosts(ctx context.Context) ([]blogentity.Post, error) {
	return u.posts.ListPublished(ctx)
}

// CreatePost creates a post authored by the acting admin.
// The publication timestamp is fixed at creation time and never editable.
func (u *adminUsecase) CreatePost(ctx context.Context, actorID uint, token string, in PostInput) (*blogentity.Post, error) {
	if !u.tokens.Valid(ActionCreatePost, 0, token) {
		return nil, nil
	}

	if _, err := u.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	post := &blogentity.Post{
		Title:       in.Title,
		Content:     in.Content,
		Picture:     in.Picture,
		PublishedAt: time.Now(),
		CategoryID:  in.CategoryID,
		AuthorID:    actorID,
	}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost updates the editable fields of a post.
// Author and publication timestamp stay untouched.
func (u *adminUsecase) UpdatePost(ctx context.Context, id uint, token string, in PostInput) (*blogentity.Post, error) {
	if !u.tokens.Valid(ActionEditPost, id, token) {
		return nil, nil
	}

	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := u.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Content = in.Content
	post.Picture = in.Picture
	post.CategoryID = in.CategoryID
	if err := u.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post together with its comments.
func (u *adminUsecase) DeletePost(ctx context.Context, id uint, token string) error {
	if !u.tokens.Valid(ActionDeletePost, id, token) {
		return nil
	}
	return u.posts.Delete(ctx, id)
}

// --- Categories ---

// ListCategories returns all categories ordered by name.
func (u *adminUsecase) ListCategories(ctx context.Context) ([]blogentity.Category, error) {
	return u.categories.ListOrderedByName(ctx)
}

// CreateCategory creates a new category.
func (u *adminUsecase) CreateCategory(ctx context.Context, token string, in CategoryInput) (*blogentity.Category, error) {
	if !u.tokens.Valid(ActionCreateCategory, 0, token) {
		return nil, nil
	}

	category := &blogentity.Category{
		Name:        in.Name,
		Description: in.Description,
	}
	if err := u.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory updates name and description of a category.
func (u *adminUsecase) UpdateCategory(ctx context.Context, id uint, token string, in CategoryInput) (*blogentity.Category, error) {
	if !u.tokens.Valid(ActionEditCategory, id, token) {
		return nil, nil
	}

	category, err := u.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = in.Name
	category.Description = in.Description
	if err := u.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category and cascades to all its posts and their
// comments. The cached published listing is invalidated afterwards since
// the cascade bypasses the post repository.
func (u *adminUsecase) DeleteCategory(ctx context.Context, id uint, token string) error {
	if !u.tokens.Valid(ActionDeleteCategory, id, token) {
		return nil
	}
	if err := u.categories.Delete(ctx, id); err != nil {
		return err
	}
	return u.posts.InvalidateListing(ctx)
}

// --- Users ---

// ListUsers returns all users ordered by creation date descending.
func (u *adminUsecase) ListUsers(ctx context.Context) ([]authentity.User, error) {
	return u.users.ListOrderedByCreatedAt(ctx)
}

// ToggleActive flips the activation flag of a user.
// An admin can never toggle their own account; that returns
// ErrSelfDeactivation and leaves the flag unchanged. The self check runs
// before the token check so the caller always gets the explicit error.
func (u *adminUsecase) ToggleActive(ctx context.Context, userID, requesterID uint, token string) (*authentity.User, error) {
	if userID == requesterID {
		return nil, ErrSelfDeactivation
	}
	if !u.tokens.Valid(ActionToggleActive, userID, token) {
		return nil, nil
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// --- Comments ---

// ListComments returns all comments ordered by creation date descending,
// whatever their status. Pending and rejected comments are only ever
// visible here, never on the public post view.
func (u *adminUsecase) ListComments(ctx context.Context) ([]blogentity.Comment, error) {
	return u.comments.ListOrderedByCreatedAt(ctx)
}

// ApproveComment moves a comment to the approved state.
// The transition is valid from any current state and idempotent.
func (u *adminUsecase) ApproveComment(ctx context.Context, id uint, token string) error {
	if !u.tokens.Valid(ActionApprove, id, token) {
		return nil
	}
	return u.setCommentStatus(ctx, id, blogentity.StatusApproved)
}

// RejectComment moves a comment to the rejected state.
// The transition is valid from any current state and idempotent.
func (u *adminUsecase) RejectComment(ctx context.Context, id uint, token string) error {
	if !u.tokens.Valid(ActionReject, id, token) {
		return nil
	}
	return u.setCommentStatus(ctx, id, blogentity.StatusRejected)
}

func (u *adminUsecase) setCommentStatus(ctx context.Context, id uint, status blogentity.CommentStatus) error {
	if _, err := u.comments.FindByID(ctx, id); err != nil {
		return err
	}
	return u.comments.UpdateStatus(ctx, id, status)
}
