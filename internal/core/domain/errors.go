package domain

import "errors"

var (
	// ErrValidation signals a missing or blank required field.
	ErrValidation = errors.New("missing required field")
	// ErrUserExists signals a registration attempt with a taken username or email.
	ErrUserExists = errors.New("username already exists")
	// ErrUserNotFound signals a lookup for an unknown username.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown-user and wrong-password login
	// failures so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTooManyAttempts signals that the failed-login throttle tripped.
	ErrTooManyAttempts = errors.New("too many failed login attempts")
	// ErrDonationNotFound signals a lookup for an unknown donation record.
	ErrDonationNotFound = errors.New("donation not found")
)
