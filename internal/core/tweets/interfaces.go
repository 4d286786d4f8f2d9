package tweets

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic interface for tweets.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, content string) (*Tweet, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]Tweet, error)
	Update(ctx context.Context, actorID, tweetID uuid.UUID, content string) (*Tweet, error)
	Delete(ctx context.Context, actorID, tweetID uuid.UUID) error
}

// Repository defines the data access interface for tweet rows.
type Repository interface {
	Create(ctx context.Context, tweet *Tweet) error
	GetByID(ctx context.Context, id uuid.UUID) (*Tweet, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Tweet, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*Tweet, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
