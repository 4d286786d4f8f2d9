package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrVideoNotFound indicates the comment's video doesn't exist
	ErrVideoNotFound = errors.New("video not found")

	// ErrInvalidCommentID indicates the comment identity key is malformed
	ErrInvalidCommentID = errors.New("invalid comment id")

	// ErrInvalidVideoID indicates the video identity key is malformed
	ErrInvalidVideoID = errors.New("invalid video id")

	// ErrEmptyContent indicates an add/update with no content
	ErrEmptyContent = errors.New("comment content is required")

	// ErrNotOwner indicates the actor does not own the comment being mutated
	ErrNotOwner = errors.New("actor is not the owner of this comment")
)
