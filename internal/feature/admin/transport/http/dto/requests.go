// Package dto defines data transfer objects for the back-office HTTP transport layer.
package dto

// PostReq represents the request body for creating or updating a post.
// Token carries the anti-forgery value the client received with the listing.
type PostReq struct {
	Title      string `json:"title" binding:"required,max=255"`
	Content    string `json:"content" binding:"required"`
	Picture    string `json:"picture" binding:"omitempty,url,max=500"`
	CategoryID uint   `json:"category_id" binding:"required"`
	Token      string `json:"token" binding:"required"`
}

// CategoryReq represents the request body for creating or updating a category.
type CategoryReq struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	Token       string `json:"token" binding:"required"`
}

// ActionReq represents the request body of a token-only action such as
// approve, reject or toggle-active.
type ActionReq struct {
	Token string `json:"token" binding:"required"`
}
