// Package history tracks which videos a user has watched. Membership is a
// set: a video enters the history once and repeat views neither duplicate
// nor reorder it.
package history

import (
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/videos"
)

// Entry is one row of a user's watch history.
type Entry struct {
	WatchedAt time.Time `json:"watchedAt" db:"watched_at"`
	UserID    uuid.UUID `json:"user" db:"user_id"`
	VideoID   uuid.UUID `json:"video" db:"video_id"`
}

// WatchedVideoView is one entry of the watch-history list: the video summary
// plus when it was first watched.
type WatchedVideoView struct {
	WatchedAt time.Time      `json:"watchedAt"`
	Video     videos.Summary `json:"video"`
}
