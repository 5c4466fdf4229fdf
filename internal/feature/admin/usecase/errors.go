// Package usecase implements the back-office orchestration logic.
package usecase

import "errors"

var (
	// ErrSelfDeactivation is returned when an admin attempts to toggle the
	// activation flag of their own account. This is a user-facing error,
	// never a silent skip.
	ErrSelfDeactivation = errors.New("cannot deactivate own account")
)
