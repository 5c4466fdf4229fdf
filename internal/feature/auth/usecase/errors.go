// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive is returned when a non-admin user with a
	// deactivated account attempts to log in. It is deliberately distinct
	// from ErrInvalidCredentials and carries a human-readable reason.
	ErrAccountInactive = errors.New("account not activated yet: an administrator must validate the registration")
)
