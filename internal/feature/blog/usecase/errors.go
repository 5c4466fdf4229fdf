// Package usecase implements the business logic for the blog feature.
package usecase

import "errors"

var (
	// ErrPostNotFound is returned when a post cannot be found by ID.
	ErrPostNotFound = errors.New("post not found")

	// ErrCategoryNotFound is returned when a category cannot be found by ID.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCommentNotFound is returned when a comment cannot be found by ID.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrCategoryNameTaken is returned when creating or renaming a category
	// to a name that already exists.
	ErrCategoryNameTaken = errors.New("category name already exists")

	// ErrEmptyContent is returned when a submitted comment has no content.
	ErrEmptyContent = errors.New("comment content must not be empty")
)
