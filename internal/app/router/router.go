// Package router assembles the Gin route table.
package router

import (
	"github.com/gin-gonic/gin"

	adminhandler "blog_backend/internal/feature/admin/transport/handler"
	authhandler "blog_backend/internal/feature/auth/transport/handler"
	bloghandler "blog_backend/internal/feature/blog/transport/handler"
	"blog_backend/internal/platform/http/handler"
	jwtmw "blog_backend/internal/platform/jwt"
)

// NewRouter wires every handler into the route table.
// Three access levels exist: public, authenticated (valid JWT) and admin
// (JWT carrying the admin role claim).
func NewRouter(auth *authhandler.AuthHandler, profile *authhandler.ProfileHandler,
	blog *bloghandler.BlogHandler, admin *adminhandler.AdminHandler) *gin.Engine {
	r := gin.Default()

	// Public routes
	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.GET("/blog", blog.Index)
	r.GET("/blog/:id", blog.Show)

	// Authenticated routes
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.POST("/blog/:id/comments", blog.SubmitComment)
		authed.GET("/profile", profile.Show)
		authed.PUT("/profile", profile.Update)
	}

	// Back-office routes, admin role required
	adm := r.Group("/admin")
	adm.Use(jwtmw.AuthRequired(), jwtmw.AdminRequired())
	{
		adm.GET("/dashboard", admin.Dashboard)

		adm.GET("/posts", admin.ListPosts)
		adm.POST("/posts", admin.CreatePost)
		adm.PUT("/posts/:id", admin.UpdatePost)
		adm.DELETE("/posts/:id", admin.DeletePost)

		adm.GET("/categories", admin.ListCategories)
		adm.POST("/categories", admin.CreateCategory)
		adm.PUT("/categories/:id", admin.UpdateCategory)
		adm.DELETE("/categories/:id", admin.DeleteCategory)

		adm.GET("/users", admin.ListUsers)
		adm.POST("/users/:id/toggle-active", admin.ToggleUserActive)

		adm.GET("/comments", admin.ListComments)
		adm.POST("/comments/:id/approve", admin.ApproveComment)
		adm.POST("/comments/:id/reject", admin.RejectComment)
	}

	return r
}
