// Package dto defines data transfer objects for the blog feature's HTTP transport layer.
package dto

import (
	"time"

	"blog_backend/internal/feature/blog/domain/entity"
)

// AuthorResponse is the public representation of a post or comment author.
type AuthorResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// CategoryResponse is the public representation of a category.
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CommentResponse is the public representation of an approved comment.
type CommentResponse struct {
	ID        uint           `json:"id"`
	Content   string         `json:"content"`
	Author    AuthorResponse `json:"author"`
	CreatedAt time.Time      `json:"created_at"`
}

// PostSummary is one entry of the published-post listing.
type PostSummary struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Picture     string           `json:"picture,omitempty"`
	PublishedAt time.Time        `json:"published_at"`
	Author      AuthorResponse   `json:"author"`
	Category    CategoryResponse `json:"category"`
}

// PostDetail is the full public view of a post, comments included.
type PostDetail struct {
	PostSummary
	Comments []CommentResponse `json:"comments"`
}

// NewPostSummary maps a post entity to its listing representation.
func NewPostSummary(p *entity.Post) PostSummary {
	return PostSummary{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Picture:     p.Picture,
		PublishedAt: p.PublishedAt,
		Author: AuthorResponse{
			ID:             p.Author.ID,
			Name:           p.Author.FullName(),
			ProfilePicture: p.Author.ProfilePicture,
		},
		Category: CategoryResponse{
			ID:          p.Category.ID,
			Name:        p.Category.Name,
			Description: p.Category.Description,
		},
	}
}

// NewCommentResponse maps a comment entity to its public representation.
func NewCommentResponse(c *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:      c.ID,
		Content: c.Content,
		Author: AuthorResponse{
			ID:             c.Author.ID,
			Name:           c.Author.FullName(),
			ProfilePicture: c.Author.ProfilePicture,
		},
		CreatedAt: c.CreatedAt,
	}
}
