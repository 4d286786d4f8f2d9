package subscriptions

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/storage"
)

// subscriptionService implements the Service interface
type subscriptionService struct {
	repo    Repository
	checker ChannelChecker
	logger  *slog.Logger
	timeout time.Duration
}

// NewService creates a new subscription service instance
func NewService(repo Repository, checker ChannelChecker, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &subscriptionService{
		repo:    repo,
		checker: checker,
		logger:  logger,
		timeout: storage.DefaultTimeout,
	}
}

// Toggle flips the subscription from actor to channel.
// Self-subscription is rejected before any storage mutation. The mutation
// is delete-or-unique-insert, never check-then-act, and is never retried.
func (s *subscriptionService) Toggle(ctx context.Context, actorID, channelID uuid.UUID) (*ToggleResult, error) {
	if actorID == uuid.Nil {
		return nil, ErrInvalidActor
	}
	if channelID == uuid.Nil {
		return nil, ErrInvalidChannelID
	}
	if actorID == channelID {
		return nil, ErrSelfSubscription
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	exists, err := s.checker.ChannelExists(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to check channel: %w", storage.Classify(err))
	}
	if !exists {
		return nil, ErrChannelNotFound
	}

	subscribed, err := s.repo.Toggle(ctx, actorID, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle subscription: %w", storage.Classify(err))
	}

	s.logger.Info("subscription toggled",
		"subscriber", actorID,
		"channel", channelID,
		"subscribed", subscribed)

	return &ToggleResult{Subscribed: subscribed}, nil
}

func (s *subscriptionService) GetSubscribers(ctx context.Context, channelID uuid.UUID) ([]SubscriberView, error) {
	if channelID == uuid.Nil {
		return nil, ErrInvalidChannelID
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	exists, err := s.checker.ChannelExists(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to check channel: %w", storage.Classify(err))
	}
	if !exists {
		return nil, ErrChannelNotFound
	}

	views, err := s.repo.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", storage.Classify(err))
	}

	return views, nil
}

func (s *subscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]SubscribedChannelView, error) {
	if subscriberID == uuid.Nil {
		return nil, ErrInvalidActor
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	views, err := s.repo.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribed channels: %w", storage.Classify(err))
	}

	return views, nil
}
