package dto

// CommentReq represents the request body for submitting a comment.
type CommentReq struct {
	Content string `json:"content" binding:"required,max=5000"`
}
