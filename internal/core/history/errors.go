package history

import "errors"

var (
	// ErrInvalidUserID indicates the user identity key is malformed
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidVideoID indicates the video identity key is malformed
	ErrInvalidVideoID = errors.New("invalid video id")
)
