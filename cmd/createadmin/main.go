// Command createadmin ensures an administrator account exists.
// An existing account with the given email is promoted to admin and
// activated; otherwise a new active admin is created.
//
// Usage: createadmin <email> <password> [firstName] [lastName]
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"blog_backend/internal/feature/auth/adapters"
	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/auth/usecase"
	infradb "blog_backend/internal/platform/db"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 3 {
		log.Fatal("usage: createadmin <email> <password> [firstName] [lastName]")
	}
	email := os.Args[1]
	password := os.Args[2]
	firstName := "Admin"
	lastName := "Admin"
	if len(os.Args) > 3 {
		firstName = os.Args[3]
	}
	if len(os.Args) > 4 {
		lastName = os.Args[4]
	}

	db := infradb.OpenDB()
	users := adapters.NewUserGorm(db)
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password:", err)
	}

	existing, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		existing.Role = entity.RoleAdmin
		existing.IsActive = true
		existing.Password = string(hashed)
		existing.FirstName = firstName
		existing.LastName = lastName
		if err := users.Update(ctx, existing); err != nil {
			log.Fatal("failed to update user:", err)
		}
		log.Printf("existing account promoted to administrator: %s", email)
	case errors.Is(err, usecase.ErrUserNotFound):
		admin := &entity.User{
			Email:     email,
			Password:  string(hashed),
			FirstName: firstName,
			LastName:  lastName,
			Role:      entity.RoleAdmin,
			IsActive:  true,
		}
		if err := users.Create(ctx, admin); err != nil {
			log.Fatal("failed to create admin:", err)
		}
		log.Printf("administrator created: %s", email)
	default:
		log.Fatal("failed to look up user:", err)
	}
}
