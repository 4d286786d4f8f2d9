package users

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/storage"
)

// userService implements the Service interface for user reads
type userService struct {
	repo    Repository
	logger  *slog.Logger
	timeout time.Duration
}

// NewService creates a new user service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		repo:    repo,
		logger:  logger,
		timeout: storage.DefaultTimeout,
	}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storage.Classify(err)
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*User, error) {
	username = normalizeUsername(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, storage.Classify(err)
	}
	return user, nil
}

// GetChannelProfile composes the channel page for a username relative to the
// viewer. Counts are derived from subscription rows on every read.
func (s *userService) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*ChannelProfileView, error) {
	username = normalizeUsername(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	profile, err := s.repo.GetChannelProfile(ctx, username, viewerID)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to compose channel profile: %w", storage.Classify(err))
	}

	s.logger.Debug("channel profile composed",
		"username", username,
		"viewer", viewerID,
		"subscribers", profile.SubscriberCount)

	return profile, nil
}

// normalizeUsername lowercases and trims a username for case-insensitive
// matching. Usernames are stored lowercase.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
