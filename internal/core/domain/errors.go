package domain

import "errors"

// Validation errors (400).
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrInvalidTaskPayload = errors.New("invalid task payload")
)

// Conflict errors (409).
var ErrEmailTaken = errors.New("email already in use")

// Authentication errors (401).
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidToken       = errors.New("invalid token")
)

// Lookup errors (404). A task owned by someone else is reported as ErrTaskNotFound.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
)
