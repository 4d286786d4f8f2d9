package likes

import "errors"

var (
	// ErrInvalidTargetType indicates a target type outside video/comment/tweet
	ErrInvalidTargetType = errors.New("invalid like target type")

	// ErrInvalidTargetID indicates the target identity key is malformed
	ErrInvalidTargetID = errors.New("invalid like target id")

	// ErrTargetNotFound indicates the liked entity doesn't exist
	ErrTargetNotFound = errors.New("like target not found")

	// ErrInvalidActor indicates a toggle without a valid actor identity
	ErrInvalidActor = errors.New("invalid actor id")
)
