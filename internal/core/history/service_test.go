package history

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHistoryRepository is a mock implementation of Repository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Record(ctx context.Context, entry *Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]WatchedVideoView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]WatchedVideoView), args.Error(1)
}

// TestRecordView_Success tests recording a watched video
func TestRecordView_Success(t *testing.T) {
	mockRepo := new(MockHistoryRepository)

	userID := uuid.New()
	videoID := uuid.New()

	mockRepo.On("Record", mock.Anything, mock.MatchedBy(func(e *Entry) bool {
		return e.UserID == userID && e.VideoID == videoID && !e.WatchedAt.IsZero()
	})).Return(nil)

	service := NewService(mockRepo, nil)

	err := service.RecordView(context.Background(), userID, videoID)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

// TestRecordView_RepeatViewIsNoOp tests that recording the same video twice
// succeeds both times; the storage layer ignores the duplicate
func TestRecordView_RepeatViewIsNoOp(t *testing.T) {
	mockRepo := new(MockHistoryRepository)

	userID := uuid.New()
	videoID := uuid.New()

	mockRepo.On("Record", mock.Anything, mock.Anything).Return(nil).Twice()

	service := NewService(mockRepo, nil)

	require.NoError(t, service.RecordView(context.Background(), userID, videoID))
	require.NoError(t, service.RecordView(context.Background(), userID, videoID))

	mockRepo.AssertExpectations(t)
}

// TestRecordView_InvalidIDs tests identifier validation
func TestRecordView_InvalidIDs(t *testing.T) {
	mockRepo := new(MockHistoryRepository)
	service := NewService(mockRepo, nil)

	assert.ErrorIs(t, service.RecordView(context.Background(), uuid.Nil, uuid.New()), ErrInvalidUserID)
	assert.ErrorIs(t, service.RecordView(context.Background(), uuid.New(), uuid.Nil), ErrInvalidVideoID)

	mockRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

// TestGetWatchHistory_Success tests the watch-history listing
func TestGetWatchHistory_Success(t *testing.T) {
	mockRepo := new(MockHistoryRepository)

	userID := uuid.New()
	views := []WatchedVideoView{{}, {}}

	mockRepo.On("ListByUser", mock.Anything, userID).Return(views, nil)

	service := NewService(mockRepo, nil)

	got, err := service.GetWatchHistory(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
