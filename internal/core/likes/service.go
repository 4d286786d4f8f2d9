package likes

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/storage"
)

// likeService implements the Service interface for like toggles
type likeService struct {
	repo    Repository
	checker TargetChecker
	logger  *slog.Logger
	timeout time.Duration
}

// NewService creates a new like service instance
func NewService(repo Repository, checker TargetChecker, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &likeService{
		repo:    repo,
		checker: checker,
		logger:  logger,
		timeout: storage.DefaultTimeout,
	}
}

// Toggle flips the like relation for the actor and target.
// Validation happens before any storage mutation; the mutation itself is a
// conditional delete followed, only if nothing was deleted, by a
// unique-guarded insert. The mutating path is never retried - a retry could
// double-toggle.
func (s *likeService) Toggle(ctx context.Context, actorID uuid.UUID, targetType TargetType, targetID uuid.UUID) (*ToggleResult, error) {
	if actorID == uuid.Nil {
		return nil, ErrInvalidActor
	}
	if _, err := ParseTargetType(string(targetType)); err != nil {
		return nil, err
	}
	if targetID == uuid.Nil {
		return nil, ErrInvalidTargetID
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	exists, err := s.checker.TargetExists(ctx, targetType, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to check like target: %w", storage.Classify(err))
	}
	if !exists {
		return nil, ErrTargetNotFound
	}

	liked, err := s.repo.Toggle(ctx, actorID, targetType, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", storage.Classify(err))
	}

	s.logger.Info("like toggled",
		"actor", actorID,
		"targetType", targetType,
		"target", targetID,
		"liked", liked)

	return &ToggleResult{Liked: liked}, nil
}

func (s *likeService) GetLikedVideos(ctx context.Context, actorID uuid.UUID) ([]LikedVideoView, error) {
	if actorID == uuid.Nil {
		return nil, ErrInvalidActor
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	views, err := s.repo.ListLikedVideos(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked videos: %w", storage.Classify(err))
	}

	return views, nil
}
