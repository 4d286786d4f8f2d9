package tweets

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTweetRepository is a mock implementation of Repository
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*Tweet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Tweet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Tweet), args.Error(1)
}

func (m *MockTweetRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*Tweet, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tweet), args.Error(1)
}

func (m *MockTweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTweetRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// TestCreate_Success tests tweet creation
func TestCreate_Success(t *testing.T) {
	mockRepo := new(MockTweetRepository)

	ownerID := uuid.New()

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tw *Tweet) bool {
		return tw.OwnerID == ownerID && tw.Content == "hello" && tw.ID != uuid.Nil
	})).Return(nil)

	service := NewService(mockRepo, nil)

	tweet, err := service.Create(context.Background(), ownerID, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", tweet.Content)

	mockRepo.AssertExpectations(t)
}

// TestCreate_EmptyContentRejected tests content validation
func TestCreate_EmptyContentRejected(t *testing.T) {
	mockRepo := new(MockTweetRepository)
	service := NewService(mockRepo, nil)

	tweet, err := service.Create(context.Background(), uuid.New(), " ")
	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.Nil(t, tweet)
}

// TestUpdate_NonOwnerForbidden tests ownership enforcement
func TestUpdate_NonOwnerForbidden(t *testing.T) {
	mockRepo := new(MockTweetRepository)

	tweetID := uuid.New()

	mockRepo.On("GetByID", mock.Anything, tweetID).Return(&Tweet{ID: tweetID, OwnerID: uuid.New()}, nil)

	service := NewService(mockRepo, nil)

	tweet, err := service.Update(context.Background(), uuid.New(), tweetID, "edited")
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Nil(t, tweet)

	mockRepo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
}

// TestDelete_OwnerSucceeds tests owner deletion
func TestDelete_OwnerSucceeds(t *testing.T) {
	mockRepo := new(MockTweetRepository)

	ownerID := uuid.New()
	tweetID := uuid.New()

	mockRepo.On("GetByID", mock.Anything, tweetID).Return(&Tweet{ID: tweetID, OwnerID: ownerID}, nil)
	mockRepo.On("Delete", mock.Anything, tweetID).Return(nil)

	service := NewService(mockRepo, nil)

	assert.NoError(t, service.Delete(context.Background(), ownerID, tweetID))
	mockRepo.AssertExpectations(t)
}
