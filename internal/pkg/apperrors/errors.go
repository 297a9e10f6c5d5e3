package apperrors

import "errors"

// Authentication and authorization errors
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Callers must not distinguish the two cases in anything
	// user-visible, to avoid username enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Resource errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrStudentNotFound  = errors.New("student not found")
)

// Student provisioning errors
var (
	// ErrRegNoAlreadyExists is returned when a registration number is
	// already taken, either as a student reg_no or as a login username.
	ErrRegNoAlreadyExists = errors.New("registration number already exists")
)

// Result errors
var (
	ErrInvalidScore = errors.New("score must be an integer")
)
