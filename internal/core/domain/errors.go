package domain

import "errors"

// Sentinel errors shared across the core. The API layer maps each of these to
// a deterministic HTTP status code; anything else surfaces as a 500.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrHostelNotFound     = errors.New("hostel not found")
	ErrComplaintNotFound  = errors.New("complaint not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrComplaintClosed    = errors.New("complaint already closed")
)
