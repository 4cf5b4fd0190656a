package storage

import "errors"

// Common storage errors
var (
	// ErrClientNotFound indicates that the client was not found in storage
	ErrClientNotFound = errors.New("client not found")

	// ErrJobNotFound indicates that the job was not found in storage
	ErrJobNotFound = errors.New("job not found")

	// ErrUserNotFound indicates that the user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that a user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that the refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")
)
