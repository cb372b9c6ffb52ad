// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register or switch
	// to an email that is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login when the email is unknown or
	// the password does not match. Callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when a password fails the policy: at least
	// 8 characters with one uppercase letter, one lowercase letter and one digit.
	ErrWeakPassword = errors.New("password must be at least 8 characters long and contain an uppercase letter, a lowercase letter and a digit")

	// ErrInvalidLogo is returned when a logo is not a data-URI encoded image.
	ErrInvalidLogo = errors.New("logo must be a data-URI encoded image")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionInvalid is returned when a session exists but is expired or revoked.
	ErrSessionInvalid = errors.New("session is expired or revoked")
)
