package comments

import (
	"context"

	"github.com/google/uuid"

	"Vidtube/internal/core/pagination"
)

// VideoChecker validates that a video exists before comments are attached
// to it or listed for it.
type VideoChecker interface {
	VideoExists(ctx context.Context, videoID uuid.UUID) (bool, error)
}

// LikeCleaner removes the likes pointing at a comment when the comment is
// deleted. Implemented by the likes repository.
type LikeCleaner interface {
	CleanCommentLikes(ctx context.Context, commentID uuid.UUID) error
}

// Service defines the business logic interface for comments: the paginated
// viewer-relative comments view plus entity management.
type Service interface {
	// GetVideoComments returns one page of a video's comments, newest
	// first, each annotated with like count and the viewer's like state.
	// viewerID may be uuid.Nil for anonymous viewers.
	GetVideoComments(ctx context.Context, videoID, viewerID uuid.UUID, params pagination.Params) (pagination.Page[View], error)

	// Add attaches a new comment to a video
	Add(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*Comment, error)

	// Update replaces a comment's content; owner only
	Update(ctx context.Context, actorID, commentID uuid.UUID, content string) (*Comment, error)

	// Delete removes a comment and its likes; owner only
	Delete(ctx context.Context, actorID, commentID uuid.UUID) error
}

// Repository defines the data access interface for comment rows and the
// comments-view join pipeline.
type Repository interface {
	// Create inserts a new comment
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a raw comment record
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// UpdateContent persists a new content value
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*Comment, error)

	// Delete removes the comment row
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByVideo runs the comments-view pipeline for one page: match the
	// video's comments, join likes for the count and the viewer's state,
	// join the owner summary, sort by creation descending, then window.
	// Returns the page of views plus the unwindowed total.
	ListByVideo(ctx context.Context, videoID, viewerID uuid.UUID, params pagination.Params) ([]View, int, error)
}
