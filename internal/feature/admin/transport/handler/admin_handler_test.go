package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog_backend/internal/feature/admin/usecase"
	authentity "blog_backend/internal/feature/auth/domain/entity"
	authusecase "blog_backend/internal/feature/auth/usecase"
	blogentity "blog_backend/internal/feature/blog/domain/entity"
	blogusecase "blog_backend/internal/feature/blog/usecase"
	jwtmw "blog_backend/internal/platform/jwt"
)

// mockAdminUsecase is a mock implementation of the AdminUsecase interface.
type mockAdminUsecase struct {
	DashboardFunc func(ctx context.Context) (*usecase.DashboardCounts, error)

	ListPostsFunc  func(ctx context.Context) ([]blogentity.Post, error)
	CreatePostFunc func(ctx context.Context, actorID uint, token string, in usecase.PostInput) (*blogentity.Post, error)
	UpdatePostFunc func(ctx context.Context, id uint, token string, in usecase.PostInput) (*blogentity.Post, error)
	DeletePostFunc func(ctx context.Context, id uint, token string) error

	ListCategoriesFunc func(ctx context.Context) ([]blogentity.Category, error)
	CreateCategoryFunc func(ctx context.Context, token string, in usecase.CategoryInput) (*blogentity.Category, error)
	UpdateCategoryFunc func(ctx context.Context, id uint, token string, in usecase.CategoryInput) (*blogentity.Category, error)
	DeleteCategoryFunc func(ctx context.Context, id uint, token string) error

	ListUsersFunc    func(ctx context.Context) ([]authentity.User, error)
	ToggleActiveFunc func(ctx context.Context, userID, requesterID uint, token string) (*authentity.User, error)

	ListCommentsFunc   func(ctx context.Context) ([]blogentity.Comment, error)
	ApproveCommentFunc func(ctx context.Context, id uint, token string) error
	RejectCommentFunc  func(ctx context.Context, id uint, token string) error
}

func (m *mockAdminUsecase) Dashboard(ctx context.Context) (*usecase.DashboardCounts, error) {
	if m.DashboardFunc != nil {
		return m.DashboardFunc(ctx)
	}
	return &usecase.DashboardCounts{}, nil
}

func (m *mockAdminUsecase) ListPosts(ctx context.Context) ([]blogentity.Post, error) {
	if m.ListPostsFunc != nil {
		return m.ListPostsFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminUsecase) CreatePost(ctx context.Context, actorID uint, token string, in usecase.PostInput) (*blogentity.Post, error) {
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(ctx, actorID, token, in)
	}
	return nil, nil
}

func (m *mockAdminUsecase) UpdatePost(ctx context.Context, id uint, token string, in usecase.PostInput) (*blogentity.Post, error) {
	if m.UpdatePostFunc != nil {
		return m.UpdatePostFunc(ctx, id, token, in)
	}
	return nil, nil
}

func (m *mockAdminUsecase) DeletePost(ctx context.Context, id uint, token string) error {
	if m.DeletePostFunc != nil {
		return m.DeletePostFunc(ctx, id, token)
	}
	return nil
}

func (m *mockAdminUsecase) ListCategories(ctx context.Context) ([]blogentity.Category, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminUsecase) CreateCategory(ctx context.Context, token string, in usecase.CategoryInput) (*blogentity.Category, error) {
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, token, in)
	}
	return nil, nil
}

func (m *mockAdminUsecase) UpdateCategory(ctx context.Context, id uint, token string, in usecase.CategoryInput) (*blogentity.Category, error) {
	if m.UpdateCategoryFunc != nil {
		return m.UpdateCategoryFunc(ctx, id, token, in)
	}
	return nil, nil
}

func (m *mockAdminUsecase) DeleteCategory(ctx context.Context, id uint, token string) error {
	if m.DeleteCategoryFunc != nil {
		return m.DeleteCategoryFunc(ctx, id, token)
	}
	return nil
}

func (m *mockAdminUsecase) ListUsers(ctx context.Context) ([]authentity.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminUsecase) ToggleActive(ctx context.Context, userID, requesterID uint, token string) (*authentity.User, error) {
	if m.ToggleActiveFunc != nil {
		return m.ToggleActiveFunc(ctx, userID, requesterID, token)
	}
	return nil, nil
}

func (m *mockAdminUsecase) ListComments(ctx context.Context) ([]blogentity.Comment, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminUsecase) ApproveComment(ctx context.Context, id uint, token string) error {
	if m.ApproveCommentFunc != nil {
		return m.ApproveCommentFunc(ctx, id, token)
	}
	return nil
}

func (m *mockAdminUsecase) RejectComment(ctx context.Context, id uint, token string) error {
	if m.RejectCommentFunc != nil {
		return m.RejectCommentFunc(ctx, id, token)
	}
	return nil
}

// stubTokens derives predictable tokens for listing assertions.
type stubTokens struct{}

func (stubTokens) Token(action string, id uint) string { return action + "-token" }

func (stubTokens) Valid(action string, id uint, token string) bool {
	return token == action+"-token"
}

// withUserID simulates the JWT middleware setting the caller identity.
func withUserID(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, id)
		c.Next()
	}
}

func TestAdminHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockAdminUsecase{
		DashboardFunc: func(ctx context.Context) (*usecase.DashboardCounts, error) {
			return &usecase.DashboardCounts{Posts: 3, Users: 2, Comments: 7}, nil
		},
	}
	handler := NewAdminHandler(mockUC, stubTokens{})

	router := gin.New()
	router.GET("/admin/dashboard", handler.Dashboard)

	req, _ := http.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"posts_count":3,"users_count":2,"comments_count":7}`, w.Body.String())
}

func TestAdminHandler_CreatePost(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success yields 201 with the new id", func(t *testing.T) {
		mockUC := &mockAdminUsecase{
			CreatePostFunc: func(ctx context.Context, actorID uint, token string, in usecase.PostInput) (*blogentity.Post, error) {
				assert.Equal(t, uint(1), actorID, "actor must come from the JWT context")
				return &blogentity.Post{ID: 9, Title: in.Title, AuthorID: actorID}, nil
			},
		}
		handler := NewAdminHandler(mockUC, stubTokens{})

		router := gin.New()
		router.POST("/admin/posts", withUserID(1), handler.CreatePost)

		body, _ := json.Marshal(gin.H{"title": "T", "content": "C", "category_id": 2, "token": "create-post-token"})
		req, _ := http.NewRequest(http.MethodPost, "/admin/posts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.EqualValues(t, 9, resp["id"])
	})

	t.Run("token mismatch yields 204 with no body", func(t *testing.T) {
		mockUC := &mockAdminUsecase{
			CreatePostFunc: func(ctx context.Context, actorID uint, token string, in usecase.PostInput) (*blogentity.Post, error) {
				return nil, nil // skipped
			},
		}
		handler := NewAdminHandler(mockUC, stubTokens{})

		router := gin.New()
		router.POST("/admin/posts", withUserID(1), handler.CreatePost)

		body, _ := json.Marshal(gin.H{"title": "T", "content": "C", "category_id": 2, "token": "stale"})
		req, _ := http.NewRequest(http.MethodPost, "/admin/posts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unknown category yields 404", func(t *testing.T) {
		mockUC := &mockAdminUsecase{
			CreatePostFunc: func(ctx context.Context, actorID uint, token string, in usecase.PostInput) (*blogentity.Post, error) {
				return nil, blogusecase.ErrCategoryNotFound
			},
		}
		handler := NewAdminHandler(mockUC, stubTokens{})

		router := gin.New()
		router.POST("/admin/posts", withUserID(1), handler.CreatePost)

		body, _ := json.Marshal(gin.H{"title": "T", "content": "C", "category_id": 999, "token": "create-post-token"})
		req, _ := http.NewRequest(http.MethodPost, "/admin/posts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminHandler_ListPosts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockAdminUsecase{
		ListPostsFunc: func(ctx context.Context) ([]blogentity.Post, error) {
			return []blogentity.Post{{ID: 1, Title: "Post"}}, nil
		},
	}
	handler := NewAdminHandler(mockUC, stubTokens{})

	router := gin.New()
	router.GET("/admin/posts", handler.ListPosts)

	req, _ := http.NewRequest(http.MethodGet, "/admin/posts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CreateToken string `json:"create_token"`
		Posts       []struct {
			ID          uint   `json:"id"`
			EditToken   string `json:"edit_token"`
			DeleteToken string `json:"delete_token"`
		} `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "create-post-token", resp.CreateToken, "listing must embed the create token")
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "edit-post-token", resp.Posts[0].EditToken)
	assert.Equal(t, "delete-token", resp.Posts[0].DeleteToken)
}

func TestAdminHandler_DeletePost(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("token arrives via the _token query parameter", func(t *testing.T) {
		var gotToken string
		mockUC := &mockAdminUsecase{
			DeletePostFunc: func(ctx context.Context, id uint, token string) error {
				gotToken = token
				return nil
			},
		}
		handler := NewAdminHandler(mockUC, stubTokens{})

		router := gin.New()
		router.DELETE("/admin/posts/:id", handler.DeletePost)

		req, _ := http.NewRequest(http.MethodDelete, "/admin/posts/1?_token=delete-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "delete-token", gotToken)
	})

	t.Run("unknown post yields 404", func(t *testing.T) {
		mockUC := &mockAdminUsecase{
			DeletePostFunc: func(ctx context.Context, id uint, token string) error {
				return blogusecase.ErrPostNotFound
			},
		}
		handler := NewAdminHandler(mockUC, stubTokens{})

		router := gin.New()
		router.DELETE("/admin/posts/:id", handler.DeletePost)

		req, _ := http.NewRequest(http.MethodDelete, "/admin/posts/999?_token=delete-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminHandler_ToggleUserActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success yields the new state", func(t *testing.T) {
		mockUC := &mockAdminUsecase{
			ToggleActiveFunc: func(ctx context.Context, userID, requesterID uint, token string) (*authentity.User, error) {
				assert.Equal(t, uint(2), userID)
				assert.Equal(t, uint(1), requesterID)
				return &authentity.User{ID: userID, IsActive: true}, nil
			},
		}
		handler := NewAdminHandler(mockUC, stubTokens{})

		router := gin.New()
		router.POST("/admin/users/:id/toggle-active", withUserID(1), handler.ToggleUserActive)

		req, _ := http.NewRequest(http.MethodPost, "/admin/users/2/toggle-active?_token=toggle-active-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":2,"is_active":true}`, w.Body.String())
	})

	t.Run("self toggle yields 409", func(t *testing.T) {
		mockUC := &mockAdminUsecase{
			ToggleActiveFunc: func(ctx context.Context, userID, requesterID uint, token string) (*authentity.User, error) {
				return nil, usecase.ErrSelfDeactivation
			},
		}
		handler := NewAdminHandler(mockUC, stubTokens{})

		router := gin.New()
		router.POST("/admin/users/:id/toggle-active", withUserID(1), handler.ToggleUserActive)

		req, _ := http.NewRequest(http.MethodPost, "/admin/users/1/toggle-active?_token=toggle-active-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("token mismatch yields 204", func(t *testing.T) {
		handler := NewAdminHandler(&mockAdminUsecase{}, stubTokens{})

		router := gin.New()
		router.POST("/admin/users/:id/toggle-active", withUserID(1), handler.ToggleUserActive)

		req, _ := http.NewRequest(http.MethodPost, "/admin/users/2/toggle-active?_token=stale", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown user yields 404", func(t *testing.T) {
		mockUC := &mockAdminUsecase{
			ToggleActiveFunc: func(ctx context.Context, userID, requesterID uint, token string) (*authentity.User, error) {
				return nil, authusecase.ErrUserNotFound
			},
		}
		handler := NewAdminHandler(mockUC, stubTokens{})

		router := gin.New()
		router.POST("/admin/users/:id/toggle-active", withUserID(1), handler.ToggleUserActive)

		req, _ := http.NewRequest(http.MethodPost, "/admin/users/999/toggle-active?_token=toggle-active-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminHandler_ModerateComment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve yields 204", func(t *testing.T) {
		var gotID uint
		mockUC := &mockAdminUsecase{
			ApproveCommentFunc: func(ctx context.Context, id uint, token string) error {
				gotID = id
				return nil
			},
		}
		handler := NewAdminHandler(mockUC, stubTokens{})

		router := gin.New()
		router.POST("/admin/comments/:id/approve", handler.ApproveComment)

		req, _ := http.NewRequest(http.MethodPost, "/admin/comments/5/approve?_token=approve-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, uint(5), gotID)
	})

	t.Run("reject yields 204", func(t *testing.T) {
		mockUC := &mockAdminUsecase{
			RejectCommentFunc: func(ctx context.Context, id uint, token string) error {
				return nil
			},
		}
		handler := NewAdminHandler(mockUC, stubTokens{})

		router := gin.New()
		router.POST("/admin/comments/:id/reject", handler.RejectComment)

		req, _ := http.NewRequest(http.MethodPost, "/admin/comments/5/reject?_token=reject-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown comment yields 404", func(t *testing.T) {
		mockUC := &mockAdminUsecase{
			ApproveCommentFunc: func(ctx context.Context, id uint, token string) error {
				return blogusecase.ErrCommentNotFound
			},
		}
		handler := NewAdminHandler(mockUC, stubTokens{})

		router := gin.New()
		router.POST("/admin/comments/:id/approve", handler.ApproveComment)

		req, _ := http.NewRequest(http.MethodPost, "/admin/comments/999/approve?_token=approve-token", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id yields 400", func(t *testing.T) {
		handler := NewAdminHandler(&mockAdminUsecase{}, stubTokens{})

		router := gin.New()
		router.POST("/admin/comments/:id/approve", handler.ApproveComment)

		req, _ := http.NewRequest(http.MethodPost, "/admin/comments/zero/approve", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_ListComments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockAdminUsecase{
		ListCommentsFunc: func(ctx context.Context) ([]blogentity.Comment, error) {
			return []blogentity.Comment{
				{ID: 1, Content: "pending one", Status: blogentity.StatusPending, Author: authentity.User{FirstName: "Marie", LastName: "Dupont"}},
			}, nil
		},
	}
	handler := NewAdminHandler(mockUC, stubTokens{})

	router := gin.New()
	router.GET("/admin/comments", handler.ListComments)

	req, _ := http.NewRequest(http.MethodGet, "/admin/comments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Comments []struct {
			ID           uint   `json:"id"`
			Status       string `json:"status"`
			AuthorName   string `json:"author_name"`
			ApproveToken string `json:"approve_token"`
			RejectToken  string `json:"reject_token"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "pending", resp.Comments[0].Status)
	assert.Equal(t, "Marie Dupont", resp.Comments[0].AuthorName)
	assert.Equal(t, "approve-token", resp.Comments[0].ApproveToken)
	assert.Equal(t, "reject-token", resp.Comments[0].RejectToken)
}
