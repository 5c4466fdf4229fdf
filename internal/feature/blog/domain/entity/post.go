package entity

import (
	"time"

	authentity "blog_backend/internal/feature/auth/domain/entity"
)

// Post represents a published blog article.
// There is no draft state: PublishedAt is set when the post is created and
// is never editable afterwards.
type Post struct {
	// ID is the unique identifier for the post.
	ID uint `gorm:"primaryKey"`

	// Title is the headline shown in listings.
	Title string `gorm:"size:255;not null"`

	// Content is the article body.
	Content string `gorm:"type:text;not null"`

	// Picture is an optional URL to a cover image.
	Picture string `gorm:"size:500"`

	// PublishedAt is set at creation time.
	PublishedAt time.Time `gorm:"not null"`

	// CategoryID references the owning category.
	CategoryID uint `gorm:"index;not null"`
	Category   Category

	// AuthorID references the admin who wrote the post.
	// The author is a back-reference, never ownership: users are not
	// deleted through their posts.
	AuthorID uint `gorm:"index;not null"`
	Author   authentity.User

	// Comments are all comments on this post, regardless of status.
	Comments []Comment `gorm:"foreignKey:PostID"`
}
