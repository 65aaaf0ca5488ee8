package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the services unwraps to one of
// these; the HTTP layer maps them to status codes.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("conflict")
)

// Error is a categorized error carrying a client-safe message
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Invalidf builds a validation error with a formatted message
func Invalidf(format string, args ...interface{}) error {
	return newError(ErrValidation, fmt.Sprintf(format, args...))
}

// Auth errors
var (
	ErrInvalidCredentials = newError(ErrUnauthenticated, "Invalid email or password")
	ErrAdminExists        = newError(ErrConflict, "Admin already exists")
	ErrCredentialsMissing = newError(ErrValidation, "Email and password are required")
	ErrWeakPassword       = newError(ErrValidation, "Password must be at least 8 characters")
)

// Camp errors
var (
	ErrInvalidID         = newError(ErrValidation, "Invalid ID")
	ErrCampNotFound      = newError(ErrNotFound, "Camp not found")
	ErrCampNameRequired  = newError(ErrValidation, "Camp name is required")
	ErrCampNameTaken     = newError(ErrConflict, "Camp already exists")
	ErrInvalidCampDate   = newError(ErrValidation, "Invalid camp date")
	ErrCouponCodeMissing = newError(ErrValidation, "Coupon code is required")
)

// Donor errors
var (
	ErrDonorNotFound     = newError(ErrNotFound, "Donor not found")
	ErrInvalidCamp       = newError(ErrValidation, "Invalid camp")
	ErrInvalidDOB        = newError(ErrValidation, "Invalid date of birth")
	ErrUnderage          = newError(ErrValidation, fmt.Sprintf("Donor must be at least %d years old", MinDonorAge))
	ErrInvalidWeight     = newError(ErrValidation, "Weight must be a number")
	ErrUnderweight       = newError(ErrValidation, fmt.Sprintf("Donor must weigh at least %d kg", MinDonorWeightKg))
	ErrInvalidBloodGroup = newError(ErrValidation, "Invalid blood group")
)
