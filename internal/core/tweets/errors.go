package tweets

import "errors"

var (
	// ErrTweetNotFound indicates the requested tweet doesn't exist
	ErrTweetNotFound = errors.New("tweet not found")

	// ErrInvalidTweetID indicates the tweet identity key is malformed
	ErrInvalidTweetID = errors.New("invalid tweet id")

	// ErrEmptyContent indicates a create/update with no content
	ErrEmptyContent = errors.New("tweet content is required")

	// ErrNotOwner indicates the actor does not own the tweet being mutated
	ErrNotOwner = errors.New("actor is not the owner of this tweet")
)
