package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/storage"
)

// historyService implements the Service interface
type historyService struct {
	repo    Repository
	logger  *slog.Logger
	timeout time.Duration
}

// NewService creates a new watch-history service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &historyService{
		repo:    repo,
		logger:  logger,
		timeout: storage.DefaultTimeout,
	}
}

func (s *historyService) RecordView(ctx context.Context, userID, videoID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrInvalidUserID
	}
	if videoID == uuid.Nil {
		return ErrInvalidVideoID
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	entry := &Entry{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now().UTC(),
	}

	if err := s.repo.Record(ctx, entry); err != nil {
		return fmt.Errorf("failed to record view: %w", storage.Classify(err))
	}

	return nil
}

func (s *historyService) GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]WatchedVideoView, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	views, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watch history: %w", storage.Classify(err))
	}

	return views, nil
}
