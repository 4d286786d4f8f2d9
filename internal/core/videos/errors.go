package videos

import "errors"

var (
	// ErrVideoNotFound indicates the requested video doesn't exist
	ErrVideoNotFound = errors.New("video not found")

	// ErrInvalidVideoID indicates the supplied video id is malformed
	ErrInvalidVideoID = errors.New("invalid video id")

	// ErrNotOwner indicates the actor does not own the video being mutated
	ErrNotOwner = errors.New("actor is not the owner of this video")

	// ErrEmptyTitle indicates a publish/update with a blank title or description
	ErrEmptyTitle = errors.New("title and description are required")

	// ErrViewerRequired indicates a detail view was requested anonymously
	ErrViewerRequired = errors.New("video detail requires an authenticated viewer")
)
