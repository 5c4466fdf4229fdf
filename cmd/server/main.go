package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"blog_backend/internal/app/router"
	adminhandler "blog_backend/internal/feature/admin/transport/handler"
	adminusecase "blog_backend/internal/feature/admin/usecase"
	authadapters "blog_backend/internal/feature/auth/adapters"
	authhandler "blog_backend/internal/feature/auth/transport/handler"
	authusecase "blog_backend/internal/feature/auth/usecase"
	blogadapters "blog_backend/internal/feature/blog/adapters"
	bloghandler "blog_backend/internal/feature/blog/transport/handler"
	blogusecase "blog_backend/internal/feature/blog/usecase"
	"blog_backend/internal/platform/cache"
	"blog_backend/internal/platform/csrf"
	infradb "blog_backend/internal/platform/db"
	jwtmw "blog_backend/internal/platform/jwt"
	infraredis "blog_backend/internal/platform/redis"
)

func main() {
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis (optional: the listing cache degrades to pass-through)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Secrets
	jwtSecret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if jwtSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	csrfSecret := os.Getenv(csrf.EnvKeyCSRFSecret)
	if csrfSecret == "" {
		log.Println("[WARN] CSRF_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	categoryRepo := blogadapters.NewCategoryGorm(db)
	commentRepo := blogadapters.NewCommentGorm(db)
	postRepo := blogadapters.NewPostGorm(db)

	// Published listing cached in Redis, invalidated on every post write
	cachedPostRepo := cache.NewCachingPostRepository(rdb, 5*time.Minute, postRepo, "posts")

	// Platform services
	jwtGen := jwtmw.NewGenerator(jwtSecret, 24*time.Hour)
	tokens := csrf.New(csrfSecret)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	blogUC := blogusecase.NewBlogUsecase(cachedPostRepo, commentRepo)
	adminUC := adminusecase.NewAdminUsecase(cachedPostRepo, categoryRepo, commentRepo, userRepo, tokens)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	profileH := authhandler.NewProfileHandler(authUC)
	blogH := bloghandler.NewBlogHandler(blogUC)
	adminH := adminhandler.NewAdminHandler(adminUC, tokens)

	r := router.NewRouter(authH, profileH, blogH, adminH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
