package likes

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLikeRepository is a mock implementation of Repository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Toggle(ctx context.Context, likerID uuid.UUID, targetType TargetType, targetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, likerID, targetType, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Exists(ctx context.Context, likerID uuid.UUID, targetType TargetType, targetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, likerID, targetType, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountByTarget(ctx context.Context, targetType TargetType, targetID uuid.UUID) (int, error) {
	args := m.Called(ctx, targetType, targetID)
	return args.Int(0), args.Error(1)
}

func (m *MockLikeRepository) ListLikedVideos(ctx context.Context, likerID uuid.UUID) ([]LikedVideoView, error) {
	args := m.Called(ctx, likerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]LikedVideoView), args.Error(1)
}

func (m *MockLikeRepository) DeleteByTarget(ctx context.Context, targetType TargetType, targetID uuid.UUID) error {
	args := m.Called(ctx, targetType, targetID)
	return args.Error(0)
}

// MockTargetChecker is a mock implementation of TargetChecker
type MockTargetChecker struct {
	mock.Mock
}

func (m *MockTargetChecker) TargetExists(ctx context.Context, targetType TargetType, targetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, targetType, targetID)
	return args.Bool(0), args.Error(1)
}

// TestToggle_CreateThenRemove tests that two toggles round-trip back to the
// absent state
func TestToggle_CreateThenRemove(t *testing.T) {
	mockRepo := new(MockLikeRepository)
	mockChecker := new(MockTargetChecker)

	actorID := uuid.New()
	videoID := uuid.New()

	mockChecker.On("TargetExists", mock.Anything, TargetVideo, videoID).Return(true, nil)
	mockRepo.On("Toggle", mock.Anything, actorID, TargetVideo, videoID).Return(true, nil).Once()
	mockRepo.On("Toggle", mock.Anything, actorID, TargetVideo, videoID).Return(false, nil).Once()

	service := NewService(mockRepo, mockChecker, nil)
	ctx := context.Background()

	first, err := service.Toggle(ctx, actorID, TargetVideo, videoID)
	require.NoError(t, err)
	assert.True(t, first.Liked)

	second, err := service.Toggle(ctx, actorID, TargetVideo, videoID)
	require.NoError(t, err)
	assert.False(t, second.Liked)

	mockRepo.AssertExpectations(t)
}

// TestToggle_TargetNotFound tests that toggling a missing target never
// reaches the relation store
func TestToggle_TargetNotFound(t *testing.T) {
	mockRepo := new(MockLikeRepository)
	mockChecker := new(MockTargetChecker)

	actorID := uuid.New()
	commentID := uuid.New()

	mockChecker.On("TargetExists", mock.Anything, TargetComment, commentID).Return(false, nil)

	service := NewService(mockRepo, mockChecker, nil)

	result, err := service.Toggle(context.Background(), actorID, TargetComment, commentID)
	assert.ErrorIs(t, err, ErrTargetNotFound)
	assert.Nil(t, result)

	mockRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestToggle_InvalidTargetType tests rejection of an unknown target type
func TestToggle_InvalidTargetType(t *testing.T) {
	mockRepo := new(MockLikeRepository)
	mockChecker := new(MockTargetChecker)

	service := NewService(mockRepo, mockChecker, nil)

	result, err := service.Toggle(context.Background(), uuid.New(), TargetType("playlist"), uuid.New())
	assert.ErrorIs(t, err, ErrInvalidTargetType)
	assert.Nil(t, result)

	mockChecker.AssertNotCalled(t, "TargetExists", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestToggle_AnonymousActor tests that a nil actor is rejected before any
// storage access
func TestToggle_AnonymousActor(t *testing.T) {
	mockRepo := new(MockLikeRepository)
	mockChecker := new(MockTargetChecker)

	service := NewService(mockRepo, mockChecker, nil)

	result, err := service.Toggle(context.Background(), uuid.Nil, TargetVideo, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidActor)
	assert.Nil(t, result)

	mockChecker.AssertNotCalled(t, "TargetExists", mock.Anything, mock.Anything, mock.Anything)
}

// TestToggle_ConcurrentWinnerIsPresent tests that a raced toggle still
// reports a definite present state instead of an error
func TestToggle_ConcurrentWinnerIsPresent(t *testing.T) {
	mockRepo := new(MockLikeRepository)
	mockChecker := new(MockTargetChecker)

	actorID := uuid.New()
	tweetID := uuid.New()

	// The repository resolves the race internally: the conflicting insert
	// reports the relation as present
	mockChecker.On("TargetExists", mock.Anything, TargetTweet, tweetID).Return(true, nil)
	mockRepo.On("Toggle", mock.Anything, actorID, TargetTweet, tweetID).Return(true, nil)

	service := NewService(mockRepo, mockChecker, nil)

	result, err := service.Toggle(context.Background(), actorID, TargetTweet, tweetID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
}

// TestToggle_StorageError tests that a repository failure surfaces as an
// error, not a guessed state
func TestToggle_StorageError(t *testing.T) {
	mockRepo := new(MockLikeRepository)
	mockChecker := new(MockTargetChecker)

	actorID := uuid.New()
	videoID := uuid.New()

	mockChecker.On("TargetExists", mock.Anything, TargetVideo, videoID).Return(true, nil)
	mockRepo.On("Toggle", mock.Anything, actorID, TargetVideo, videoID).Return(false, errors.New("connection reset"))

	service := NewService(mockRepo, mockChecker, nil)

	result, err := service.Toggle(context.Background(), actorID, TargetVideo, videoID)
	assert.Error(t, err)
	assert.Nil(t, result)

	// A failed mutation is never retried
	mockRepo.AssertNumberOfCalls(t, "Toggle", 1)
}

// TestGetLikedVideos_Success tests the liked-videos listing
func TestGetLikedVideos_Success(t *testing.T) {
	mockRepo := new(MockLikeRepository)
	mockChecker := new(MockTargetChecker)

	actorID := uuid.New()
	views := []LikedVideoView{
		{LikeID: uuid.New()},
		{LikeID: uuid.New()},
	}

	mockRepo.On("ListLikedVideos", mock.Anything, actorID).Return(views, nil)

	service := NewService(mockRepo, mockChecker, nil)

	got, err := service.GetLikedVideos(context.Background(), actorID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

// TestGetLikedVideos_AnonymousActor tests rejection of anonymous listing
func TestGetLikedVideos_AnonymousActor(t *testing.T) {
	mockRepo := new(MockLikeRepository)
	mockChecker := new(MockTargetChecker)

	service := NewService(mockRepo, mockChecker, nil)

	got, err := service.GetLikedVideos(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidActor)
	assert.Nil(t, got)

	mockRepo.AssertNotCalled(t, "ListLikedVideos", mock.Anything, mock.Anything)
}
