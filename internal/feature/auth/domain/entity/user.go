// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role identifies the permission level of a user.
// Roles form a closed set; free-form role strings are not allowed.
type Role string

const (
	// RoleMember is the default role assigned at registration.
	RoleMember Role = "member"

	// RoleAdmin grants access to the back-office and moderation actions.
	RoleAdmin Role = "admin"
)

// User represents a registered user in the system.
// It contains authentication credentials and profile data for the blog.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// FirstName and LastName are shown next to posts and comments.
	FirstName string `gorm:"size:255;not null"`
	LastName  string `gorm:"size:255;not null"`

	// ProfilePicture is an optional URL to the user's avatar.
	ProfilePicture string `gorm:"size:500"`

	// Role is the user's permission level (member or admin).
	Role Role `gorm:"size:50;not null;default:member"`

	// IsActive reports whether an administrator has validated the account.
	// Self-registered users start inactive; whoever constructs the user
	// decides the initial value (fixtures and the admin command set true).
	IsActive bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// IsAdmin returns true if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanAuthenticate reports whether the activation gate lets the user log in.
// Admins bypass the gate entirely so the bootstrap admin can always sign in,
// even while flagged inactive.
func (u *User) CanAuthenticate() bool {
	return u.IsActive || u.IsAdmin()
}

// FullName returns the display name used in post and comment listings.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
