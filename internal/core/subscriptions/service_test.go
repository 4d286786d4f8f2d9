package subscriptions

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSubscriptionRepository is a mock implementation of Repository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) CountByChannel(ctx context.Context, channelID uuid.UUID) (int, error) {
	args := m.Called(ctx, channelID)
	return args.Int(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]SubscriberView, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SubscriberView), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]SubscribedChannelView, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SubscribedChannelView), args.Error(1)
}

// MockChannelChecker is a mock implementation of ChannelChecker
type MockChannelChecker struct {
	mock.Mock
}

func (m *MockChannelChecker) ChannelExists(ctx context.Context, channelID uuid.UUID) (bool, error) {
	args := m.Called(ctx, channelID)
	return args.Bool(0), args.Error(1)
}

// TestToggle_SubscribeThenUnsubscribe tests the toggle round trip
func TestToggle_SubscribeThenUnsubscribe(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	mockChecker := new(MockChannelChecker)

	actorID := uuid.New()
	channelID := uuid.New()

	mockChecker.On("ChannelExists", mock.Anything, channelID).Return(true, nil)
	mockRepo.On("Toggle", mock.Anything, actorID, channelID).Return(true, nil).Once()
	mockRepo.On("Toggle", mock.Anything, actorID, channelID).Return(false, nil).Once()

	service := NewService(mockRepo, mockChecker, nil)
	ctx := context.Background()

	first, err := service.Toggle(ctx, actorID, channelID)
	require.NoError(t, err)
	assert.True(t, first.Subscribed)

	second, err := service.Toggle(ctx, actorID, channelID)
	require.NoError(t, err)
	assert.False(t, second.Subscribed)

	mockRepo.AssertExpectations(t)
}

// TestToggle_SelfSubscriptionRejected tests that subscribing to your own
// channel is rejected before any storage access
func TestToggle_SelfSubscriptionRejected(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	mockChecker := new(MockChannelChecker)

	actorID := uuid.New()

	service := NewService(mockRepo, mockChecker, nil)

	result, err := service.Toggle(context.Background(), actorID, actorID)
	assert.ErrorIs(t, err, ErrSelfSubscription)
	assert.Nil(t, result)

	mockChecker.AssertNotCalled(t, "ChannelExists", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}

// TestToggle_ChannelNotFound tests toggling against a missing channel
func TestToggle_ChannelNotFound(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	mockChecker := new(MockChannelChecker)

	actorID := uuid.New()
	channelID := uuid.New()

	mockChecker.On("ChannelExists", mock.Anything, channelID).Return(false, nil)

	service := NewService(mockRepo, mockChecker, nil)

	result, err := service.Toggle(context.Background(), actorID, channelID)
	assert.ErrorIs(t, err, ErrChannelNotFound)
	assert.Nil(t, result)

	mockRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}

// TestToggle_AnonymousActor tests rejection of an anonymous toggle
func TestToggle_AnonymousActor(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	mockChecker := new(MockChannelChecker)

	service := NewService(mockRepo, mockChecker, nil)

	result, err := service.Toggle(context.Background(), uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidActor)
	assert.Nil(t, result)
}

// TestToggle_StorageErrorNotRetried tests that a failed toggle mutation is
// surfaced once and never retried
func TestToggle_StorageErrorNotRetried(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	mockChecker := new(MockChannelChecker)

	actorID := uuid.New()
	channelID := uuid.New()

	mockChecker.On("ChannelExists", mock.Anything, channelID).Return(true, nil)
	mockRepo.On("Toggle", mock.Anything, actorID, channelID).Return(false, errors.New("connection reset"))

	service := NewService(mockRepo, mockChecker, nil)

	result, err := service.Toggle(context.Background(), actorID, channelID)
	assert.Error(t, err)
	assert.Nil(t, result)

	mockRepo.AssertNumberOfCalls(t, "Toggle", 1)
}

// TestGetSubscribers_ChannelNotFound tests listing subscribers of a missing
// channel
func TestGetSubscribers_ChannelNotFound(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	mockChecker := new(MockChannelChecker)

	channelID := uuid.New()

	mockChecker.On("ChannelExists", mock.Anything, channelID).Return(false, nil)

	service := NewService(mockRepo, mockChecker, nil)

	views, err := service.GetSubscribers(context.Background(), channelID)
	assert.ErrorIs(t, err, ErrChannelNotFound)
	assert.Nil(t, views)
}

// TestGetSubscribedChannels_Success tests the subscribed-channels listing
func TestGetSubscribedChannels_Success(t *testing.T) {
	mockRepo := new(MockSubscriptionRepository)
	mockChecker := new(MockChannelChecker)

	subscriberID := uuid.New()
	views := []SubscribedChannelView{{}, {}, {}}

	mockRepo.On("ListSubscribedChannels", mock.Anything, subscriberID).Return(views, nil)

	service := NewService(mockRepo, mockChecker, nil)

	got, err := service.GetSubscribedChannels(context.Background(), subscriberID)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
