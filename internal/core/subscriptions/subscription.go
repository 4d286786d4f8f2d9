package subscriptions

import (
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/users"
	"Vidtube/internal/core/videos"
)

// Subscription is a relation record from a subscriber to a channel (both
// users). Existence is the entire state; the (subscriber, channel) pair is
// unique in storage and self-subscriptions are rejected.
type Subscription struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	ID           uuid.UUID `json:"id" db:"id"`
	SubscriberID uuid.UUID `json:"subscriber" db:"subscriber_id"`
	ChannelID    uuid.UUID `json:"channel" db:"channel_id"`
}

// SubscriberView is one entry of a channel's subscriber list: the subscriber
// user annotated with their own subscriber count and whether the channel is
// subscribed back to them.
type SubscriberView struct {
	SubscribedAt    time.Time     `json:"subscribedAt"`
	Subscriber      users.Summary `json:"subscriber"`
	SubscriberCount int           `json:"subscriberCount"`
	SubscribedBack  bool          `json:"subscribedBack"`
}

// SubscribedChannelView is one entry of a user's subscribed-channels list:
// the channel user plus its most recently created video, absent when the
// channel has no videos.
type SubscribedChannelView struct {
	SubscribedAt time.Time       `json:"subscribedAt"`
	Channel      users.Summary   `json:"channel"`
	LatestVideo  *videos.Summary `json:"latestVideo,omitempty"`
}

// ToggleResult reports the relation state after a toggle returns.
type ToggleResult struct {
	Subscribed bool `json:"subscribed"`
}
