package tweets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/storage"
)

type tweetService struct {
	repo    Repository
	logger  *slog.Logger
	timeout time.Duration
}

// NewService creates a new tweet service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &tweetService{
		repo:    repo,
		logger:  logger,
		timeout: storage.DefaultTimeout,
	}
}

func (s *tweetService) Create(ctx context.Context, ownerID uuid.UUID, content string) (*Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	tweet := &Tweet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Create(ctx, tweet); err != nil {
		return nil, fmt.Errorf("failed to create tweet: %w", storage.Classify(err))
	}

	return tweet, nil
}

func (s *tweetService) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]Tweet, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidTweetID
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", storage.Classify(err))
	}
	return list, nil
}

func (s *tweetService) Update(ctx context.Context, actorID, tweetID uuid.UUID, content string) (*Tweet, error) {
	if tweetID == uuid.Nil {
		return nil, ErrInvalidTweetID
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.requireOwner(ctx, actorID, tweetID); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateContent(ctx, tweetID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update tweet: %w", storage.Classify(err))
	}
	return updated, nil
}

func (s *tweetService) Delete(ctx context.Context, actorID, tweetID uuid.UUID) error {
	if tweetID == uuid.Nil {
		return ErrInvalidTweetID
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.requireOwner(ctx, actorID, tweetID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, tweetID); err != nil {
		return fmt.Errorf("failed to delete tweet: %w", storage.Classify(err))
	}
	return nil
}

func (s *tweetService) requireOwner(ctx context.Context, actorID, tweetID uuid.UUID) error {
	tweet, err := s.repo.GetByID(ctx, tweetID)
	if err != nil {
		if err == ErrTweetNotFound {
			return err
		}
		return storage.Classify(err)
	}
	if tweet.OwnerID != actorID {
		return ErrNotOwner
	}
	return nil
}
