// Command seed loads a small demo dataset: one admin, one member, three
// categories, three posts and three comments (two approved, one pending).
package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	blogentity "blog_backend/internal/feature/blog/domain/entity"
	infradb "blog_backend/internal/platform/db"
)

func main() {
	_ = godotenv.Load()

	db := infradb.OpenDB()

	admin := &authentity.User{
		Email:     "admin@paradox.local",
		Password:  mustHash("admin123"),
		FirstName: "Admin",
		LastName:  "Paradox",
		Role:      authentity.RoleAdmin,
		IsActive:  true,
	}
	member := &authentity.User{
		Email:          "marie@example.com",
		Password:       mustHash("user123"),
		FirstName:      "Marie",
		LastName:       "Dupont",
		ProfilePicture: "https://picsum.photos/id/64/200",
		Role:           authentity.RoleMember,
		IsActive:       true,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatal("failed to seed admin:", err)
	}
	if err := db.Create(member).Error; err != nil {
		log.Fatal("failed to seed member:", err)
	}

	categories := []*blogentity.Category{
		{Name: "Technology"},
		{Name: "Travel"},
		{Name: "Lifestyle"},
	}
	for _, cat := range categories {
		if err := db.Create(cat).Error; err != nil {
			log.Fatal("failed to seed category:", err)
		}
	}

	publishedAt := time.Now().Add(-48 * time.Hour)
	posts := []*blogentity.Post{
		{
			Title:       "Getting started with Go services",
			Content:     "Go keeps the backend simple and fast...",
			Picture:     "https://picsum.photos/id/1/800/400",
			PublishedAt: publishedAt,
			CategoryID:  categories[0].ID,
			AuthorID:    admin.ID,
		},
		{
			Title:       "My holidays in Brittany",
			Content:     "Brittany offers stunning coastlines...",
			Picture:     "https://picsum.photos/id/10/800/400",
			PublishedAt: publishedAt,
			CategoryID:  categories[1].ID,
			AuthorID:    admin.ID,
		},
		{
			Title:       "A productive morning routine",
			Content:     "Getting up early changes everything...",
			Picture:     "https://picsum.photos/id/100/800/400",
			PublishedAt: publishedAt,
			CategoryID:  categories[2].ID,
			AuthorID:    admin.ID,
		},
	}
	for _, post := range posts {
		if err := db.Create(post).Error; err != nil {
			log.Fatal("failed to seed post:", err)
		}
	}

	comments := []*blogentity.Comment{
		{
			Content:  "Excellent article, very instructive!",
			Status:   blogentity.StatusApproved,
			AuthorID: member.ID,
			PostID:   posts[0].ID,
		},
		{
			Content:  "I loved Brittany too.",
			Status:   blogentity.StatusApproved,
			AuthorID: member.ID,
			PostID:   posts[1].ID,
		},
		{
			Content:  "Waiting for moderation...",
			Status:   blogentity.StatusPending,
			AuthorID: member.ID,
			PostID:   posts[0].ID,
		},
	}
	for _, comment := range comments {
		if err := db.Create(comment).Error; err != nil {
			log.Fatal("failed to seed comment:", err)
		}
	}

	log.Println("seed ok")
}

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password:", err)
	}
	return string(hashed)
}
