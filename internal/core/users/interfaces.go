package users

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic interface for user reads.
// User creation and credential flows belong to the external auth
// collaborator; this service only composes read views over stored records.
type Service interface {
	// GetByID retrieves a user by identity key
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByUsername retrieves a user by case-normalized username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetChannelProfile composes the viewer-relative channel page for a
	// username: subscriber counts plus whether the viewer is subscribed.
	// viewerID may be uuid.Nil for anonymous viewers.
	GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*ChannelProfileView, error)
}

// Repository defines the data access interface for user records.
type Repository interface {
	// GetByID retrieves a user by identity key
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByUsername retrieves a user by lowercase username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetChannelProfile runs the channel-profile join in a single query:
	// match user by username, derive subscriber/subscribed-to counts and the
	// viewer's subscription state from subscription rows.
	GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*ChannelProfileView, error)
}
