package subscriptions

import "errors"

var (
	// ErrChannelNotFound indicates the channel user doesn't exist
	ErrChannelNotFound = errors.New("channel not found")

	// ErrInvalidChannelID indicates the channel identity key is malformed
	ErrInvalidChannelID = errors.New("invalid channel id")

	// ErrInvalidActor indicates a toggle without a valid actor identity
	ErrInvalidActor = errors.New("invalid actor id")

	// ErrSelfSubscription indicates an actor subscribing to their own channel
	ErrSelfSubscription = errors.New("cannot subscribe to your own channel")
)
