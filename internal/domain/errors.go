// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Auth errors
	ErrUnauthenticated    = errors.New("authentication credentials were not provided")
	ErrForbidden          = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrSlugTaken            = errors.New("slug already taken")

	// Membership workflow errors. The literal response messages live in the
	// handler layer; these identify which branch was taken.
	ErrUserNotValid     = errors.New("user not valid")
	ErrAlreadyInvited   = errors.New("user already invited to this organization")
	ErrNotInvited       = errors.New("user not invited to this organization")
	ErrNotMember        = errors.New("user is not a member of this organization")
	ErrOwnerCannotLeave = errors.New("owner cannot leave own organization")
)
