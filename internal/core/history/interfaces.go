package history

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic interface for the watch-history set.
type Service interface {
	// RecordView adds the video to the user's watch history. Repeat views
	// are no-ops: no duplicate entry and no reordering.
	RecordView(ctx context.Context, userID, videoID uuid.UUID) error

	// GetWatchHistory returns the user's watched videos joined to owner
	// summaries, most recently first-watched first.
	GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]WatchedVideoView, error)
}

// Repository defines the data access interface for watch-history rows.
type Repository interface {
	// Record inserts the membership row, ignoring duplicates. The insert is
	// guarded by the (user_id, video_id) primary key; a conflict leaves the
	// original watched_at untouched.
	Record(ctx context.Context, entry *Entry) error

	// ListByUser joins history rows to video and owner summaries
	ListByUser(ctx context.Context, userID uuid.UUID) ([]WatchedVideoView, error)
}
