package subscriptions

import (
	"context"

	"github.com/google/uuid"
)

// ChannelChecker validates that a channel user exists before a toggle
// mutates the relation store.
type ChannelChecker interface {
	ChannelExists(ctx context.Context, channelID uuid.UUID) (bool, error)
}

// Service defines the business logic interface for subscription toggles and
// the two subscription list views.
type Service interface {
	// Toggle flips the subscription from actor to channel. Self-subscription
	// is rejected. Returns the post-operation state: true if subscribed.
	Toggle(ctx context.Context, actorID, channelID uuid.UUID) (*ToggleResult, error)

	// GetSubscribers lists a channel's subscribers, each annotated with
	// their own subscriber count and whether the channel subscribes back.
	GetSubscribers(ctx context.Context, channelID uuid.UUID) ([]SubscriberView, error)

	// GetSubscribedChannels lists the channels a user subscribes to, each
	// with the channel's most recently created video when one exists.
	GetSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]SubscribedChannelView, error)
}

// Repository defines the data access interface for subscription rows.
type Repository interface {
	// Toggle atomically flips the relation: conditional delete on the
	// (subscriber_id, channel_id) natural key, then a unique-guarded insert
	// if nothing was deleted. A conflicting concurrent insert is treated as
	// subscribed. Returns true if the subscription exists after the call.
	Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// Exists reports whether subscriber currently follows channel
	Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// CountByChannel returns a channel's subscriber count, computed on read
	CountByChannel(ctx context.Context, channelID uuid.UUID) (int, error)

	// ListSubscribers runs the subscriber-list join for a channel
	ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]SubscriberView, error)

	// ListSubscribedChannels runs the subscribed-channels join, including
	// each channel's latest video
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]SubscribedChannelView, error)
}
