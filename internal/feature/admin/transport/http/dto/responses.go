package dto

import "time"

// DashboardResponse aggregates entity counts for the back-office landing page.
type DashboardResponse struct {
	PostsCount    int64 `json:"posts_count"`
	UsersCount    int64 `json:"users_count"`
	CommentsCount int64 `json:"comments_count"`
}

// PostItem is one entry of the back-office post listing.
// EditToken and DeleteToken are the expected anti-forgery values for the
// corresponding mutations, mirroring form-rendered hidden fields.
type PostItem struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Picture     string    `json:"picture,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	AuthorID    uint      `json:"author_id"`
	CategoryID  uint      `json:"category_id"`
	EditToken   string    `json:"edit_token"`
	DeleteToken string    `json:"delete_token"`
}

// PostListResponse is the back-office post listing with its create token.
type PostListResponse struct {
	Posts       []PostItem `json:"posts"`
	CreateToken string     `json:"create_token"`
}

// CategoryItem is one entry of the back-office category listing.
type CategoryItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	EditToken   string `json:"edit_token"`
	DeleteToken string `json:"delete_token"`
}

// CategoryListResponse is the back-office category listing with its create token.
type CategoryListResponse struct {
	Categories  []CategoryItem `json:"categories"`
	CreateToken string         `json:"create_token"`
}

// UserItem is one entry of the back-office user listing.
type UserItem struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	ToggleToken string    `json:"toggle_token"`
}

// UserListResponse is the back-office user listing.
type UserListResponse struct {
	Users []UserItem `json:"users"`
}

// CommentItem is one entry of the moderation listing. Unlike the public
// post view it carries comments of every status.
type CommentItem struct {
	ID           uint      `json:"id"`
	Content      string    `json:"content"`
	Status       string    `json:"status"`
	AuthorID     uint      `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	PostID       uint      `json:"post_id"`
	CreatedAt    time.Time `json:"created_at"`
	ApproveToken string    `json:"approve_token"`
	RejectToken  string    `json:"reject_token"`
}

// CommentListResponse is the back-office moderation listing.
type CommentListResponse struct {
	Comments []CommentItem `json:"comments"`
}
