package entity

import (
	"time"

	authentity "blog_backend/internal/feature/auth/domain/entity"
)

// CommentStatus is the moderation state of a comment.
type CommentStatus string

const (
	// StatusPending is the initial state of every submitted comment.
	StatusPending CommentStatus = "pending"

	// StatusApproved makes the comment visible on the public post view.
	StatusApproved CommentStatus = "approved"

	// StatusRejected hides the comment from the public post view.
	StatusRejected CommentStatus = "rejected"
)

// Comment represents a reader comment awaiting or past moderation.
// Comments are created pending and only admin actions move them to
// approved or rejected. Both transitions are valid from any current state,
// so re-moderating is always possible.
type Comment struct {
	// ID is the unique identifier for the comment.
	ID uint `gorm:"primaryKey"`

	// Content is the comment body.
	Content string `gorm:"type:text;not null"`

	// Status is the moderation state (pending, approved or rejected).
	Status CommentStatus `gorm:"size:50;not null;default:pending"`

	// AuthorID references the user who submitted the comment.
	AuthorID uint `gorm:"index;not null"`
	Author   authentity.User

	// PostID references the commented post. Comments are never deleted on
	// their own, only together with their post.
	PostID uint `gorm:"index;not null"`

	// CreatedAt is the submission timestamp.
	CreatedAt time.Time
}

// IsApproved reports whether the comment is publicly visible.
func (c *Comment) IsApproved() bool {
	return c.Status == StatusApproved
}
