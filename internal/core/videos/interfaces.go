package videos

import (
	"context"

	"github.com/google/uuid"

	"Vidtube/internal/core/pagination"
)

// ViewRecorder records a video in the viewer's watch history. Implemented by
// the history service; kept as a local interface so videos doesn't depend on
// the history package directly.
type ViewRecorder interface {
	RecordView(ctx context.Context, userID, videoID uuid.UUID) error
}

// Service defines the business logic interface for videos: entity
// management plus the viewer-relative detail view and its read side effects.
type Service interface {
	// GetDetail composes the video detail view for an authenticated viewer.
	// As observable side effects it increments the view counter and records
	// the video in the viewer's watch history; both are best-effort and a
	// failure in either never fails the read.
	GetDetail(ctx context.Context, videoID, viewerID uuid.UUID) (*DetailView, error)

	// List returns a windowed, sorted page of video summaries.
	// Sort defaults to ascending creation order; SortDirection "descending"
	// reverses, anything else is ascending.
	List(ctx context.Context, filter ListFilter, params pagination.Params) (pagination.Page[Summary], error)

	// Publish creates a new published video owned by the actor
	Publish(ctx context.Context, ownerID uuid.UUID, req PublishRequest) (*Video, error)

	// Update mutates title/description/thumbnail; owner only
	Update(ctx context.Context, actorID, videoID uuid.UUID, req UpdateRequest) (*Video, error)

	// Delete removes a video; owner only
	Delete(ctx context.Context, actorID, videoID uuid.UUID) error

	// TogglePublishStatus flips is_published; owner only. Returns the new flag.
	TogglePublishStatus(ctx context.Context, actorID, videoID uuid.UUID) (bool, error)
}

// Repository defines the data access interface for video records and the
// detail-view join pipeline.
type Repository interface {
	// Create inserts a new video record
	Create(ctx context.Context, video *Video) error

	// GetByID retrieves a raw video record
	GetByID(ctx context.Context, id uuid.UUID) (*Video, error)

	// Update persists the mutable fields of a video
	Update(ctx context.Context, video *Video) error

	// Delete removes the video row
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps the monotonic view counter by one
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// GetDetail runs the detail-view pipeline in one query: match the video,
	// join the owner with subscriber count and the viewer's subscription
	// state, and derive like count and the viewer's like state.
	GetDetail(ctx context.Context, videoID, viewerID uuid.UUID) (*DetailView, error)

	// List returns a window of video summaries plus the unwindowed total.
	// Ordering and windowing are resolved from params after sort.
	List(ctx context.Context, filter ListFilter, params pagination.Params) ([]Summary, int, error)

	// Exists reports whether a video row exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
