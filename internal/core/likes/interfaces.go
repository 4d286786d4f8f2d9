package likes

import (
	"context"

	"github.com/google/uuid"
)

// TargetChecker validates that like targets exist before a toggle mutates
// the relation store. This prevents creating likes on non-existent content.
type TargetChecker interface {
	// TargetExists checks if the entity behind (targetType, targetID) exists
	TargetExists(ctx context.Context, targetType TargetType, targetID uuid.UUID) (bool, error)
}

// Service defines the business logic interface for like toggles and the
// liked-videos view.
type Service interface {
	// Toggle flips the like relation for (actor, targetType, targetID).
	// Returns the post-operation state: true if the like now exists.
	// Concurrent toggles on the same natural key converge to a single row or
	// none - a race is never surfaced as an error.
	Toggle(ctx context.Context, actorID uuid.UUID, targetType TargetType, targetID uuid.UUID) (*ToggleResult, error)

	// GetLikedVideos returns every video the actor has liked, joined to the
	// video and its owner summary, ordered by like creation descending.
	GetLikedVideos(ctx context.Context, actorID uuid.UUID) ([]LikedVideoView, error)
}

// Repository defines the data access interface for like rows. The toggle is
// expressed as atomic storage operations, never check-then-act.
type Repository interface {
	// Toggle atomically flips the relation: a conditional delete of the row
	// matching the natural key; if nothing was deleted, an insert guarded by
	// the unique constraint on (liker_id, target_type, target_id). An insert
	// that conflicts with a concurrent winner is treated as present.
	// Returns true if the like exists after the call.
	Toggle(ctx context.Context, likerID uuid.UUID, targetType TargetType, targetID uuid.UUID) (bool, error)

	// Exists reports whether the actor currently likes the target
	Exists(ctx context.Context, likerID uuid.UUID, targetType TargetType, targetID uuid.UUID) (bool, error)

	// CountByTarget returns the number of likes on a target, computed on read
	CountByTarget(ctx context.Context, targetType TargetType, targetID uuid.UUID) (int, error)

	// ListLikedVideos runs the liked-videos join: likes by the actor
	// targeting videos, joined to video and owner, newest like first.
	ListLikedVideos(ctx context.Context, likerID uuid.UUID) ([]LikedVideoView, error)

	// DeleteByTarget removes every like pointing at a target. Used when the
	// target entity itself is deleted.
	DeleteByTarget(ctx context.Context, targetType TargetType, targetID uuid.UUID) error
}
