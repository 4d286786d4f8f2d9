package videos

import (
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/users"
)

// Video represents an uploaded video record. The owner is immutable after
// creation. ViewCount is a monotonic counter incremented as a side effect of
// detail reads; it is never decremented.
type Video struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	VideoFile   string    `json:"videoFile" db:"video_file"`
	Thumbnail   string    `json:"thumbnail" db:"thumbnail"`
	ID          uuid.UUID `json:"id" db:"id"`
	OwnerID     uuid.UUID `json:"owner" db:"owner_id"`
	Duration    float64   `json:"duration" db:"duration"`
	ViewCount   int64     `json:"viewCount" db:"view_count"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
}

// Summary is the video projection used in list views (liked videos, watch
// history, subscribed channels, search listings), carrying the full owner
// summary.
type Summary struct {
	CreatedAt   time.Time     `json:"createdAt"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	VideoFile   string        `json:"videoFile"`
	Thumbnail   string        `json:"thumbnail"`
	Owner       users.Summary `json:"owner"`
	ID          uuid.UUID     `json:"id"`
	Duration    float64       `json:"duration"`
	ViewCount   int64         `json:"viewCount"`
	IsPublished bool          `json:"isPublished"`
}

// OwnerView is the channel block nested inside a video detail view: the
// owner summary plus subscription data computed relative to the viewer.
type OwnerView struct {
	users.Summary
	SubscriberCount int  `json:"subscriberCount"`
	IsSubscribed    bool `json:"isSubscribed"`
}

// DetailView is the viewer-relative video page. LikeCount and IsLiked are
// derived from like rows on every read; nothing here is denormalized.
type DetailView struct {
	CreatedAt   time.Time `json:"createdAt"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Owner       OwnerView `json:"owner"`
	ID          uuid.UUID `json:"id"`
	Duration    float64   `json:"duration"`
	ViewCount   int64     `json:"viewCount"`
	LikeCount   int       `json:"likeCount"`
	IsLiked     bool      `json:"isLiked"`
}

// ListFilter narrows the video listing. Query is a case-insensitive title
// substring; OwnerID restricts to a single channel when non-nil.
type ListFilter struct {
	Query   string
	OwnerID uuid.UUID
}

// PublishRequest carries the fields for publishing a new video.
type PublishRequest struct {
	Title       string
	Description string
	VideoFile   string
	Thumbnail   string
	Duration    float64
}

// UpdateRequest carries the mutable fields of a video. Thumbnail is optional
// and left unchanged when empty.
type UpdateRequest struct {
	Title       string
	Description string
	Thumbnail   string
}
