package users

import "errors"

var (
	// ErrUserNotFound indicates no user matches the given id or username
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID indicates the supplied identity key is malformed
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidUsername indicates an empty or malformed username
	ErrInvalidUsername = errors.New("invalid username")
)
