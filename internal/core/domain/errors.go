package domain

import "errors"

var (
	// ErrUsernameTaken is returned when an insert collides with the
	// uniqueness constraint on username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when an update targets a username
	// that does not exist.
	ErrUserNotFound = errors.New("user not found")
)
