package domain

import "errors"

// Error kinds. The HTTP layer maps each kind to exactly one status code.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrRateLimited  = errors.New("rate limited")
)

// Error pairs an error kind with a message that is safe to show to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func Invalid(msg string) error   { return &Error{Kind: ErrValidation, Message: msg} }
func Conflict(msg string) error  { return &Error{Kind: ErrConflict, Message: msg} }
func NotFound(msg string) error  { return &Error{Kind: ErrNotFound, Message: msg} }
func Forbidden(msg string) error { return &Error{Kind: ErrForbidden, Message: msg} }

// Authentication errors shared by sign-in and the auth middleware.
var (
	ErrNoCredential       = &Error{Kind: ErrForbidden, Message: "No token provided"}
	ErrTokenInvalid       = &Error{Kind: ErrUnauthorized, Message: "Failed to authenticate token"}
	ErrInvalidCredentials = &Error{Kind: ErrUnauthorized, Message: "Invalid password"}
	ErrUserInactive       = &Error{Kind: ErrForbidden, Message: "User is inactive"}
	ErrTooManyAttempts    = &Error{Kind: ErrRateLimited, Message: "Too many failed sign-in attempts, try again later"}
)
