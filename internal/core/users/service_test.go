package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*ChannelProfileView, error) {
	args := m.Called(ctx, username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ChannelProfileView), args.Error(1)
}

// TestGetChannelProfile_NormalizesUsername tests that lookups are
// case-insensitive: the repo always sees the lowercase form
func TestGetChannelProfile_NormalizesUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)

	viewerID := uuid.New()
	profile := &ChannelProfileView{Username: "chaicode", SubscriberCount: 3}

	mockRepo.On("GetChannelProfile", mock.Anything, "chaicode", viewerID).Return(profile, nil)

	service := NewService(mockRepo, nil)

	got, err := service.GetChannelProfile(context.Background(), "  ChaiCode ", viewerID)
	require.NoError(t, err)
	assert.Equal(t, "chaicode", got.Username)
	assert.Equal(t, 3, got.SubscriberCount)

	mockRepo.AssertExpectations(t)
}

// TestGetChannelProfile_AnonymousViewer tests that a nil viewer is passed
// through; the join resolves isSubscribed to false for it
func TestGetChannelProfile_AnonymousViewer(t *testing.T) {
	mockRepo := new(MockUserRepository)

	profile := &ChannelProfileView{Username: "someone", IsSubscribed: false}

	mockRepo.On("GetChannelProfile", mock.Anything, "someone", uuid.Nil).Return(profile, nil)

	service := NewService(mockRepo, nil)

	got, err := service.GetChannelProfile(context.Background(), "someone", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, got.IsSubscribed)
}

// TestGetChannelProfile_EmptyUsername tests username validation
func TestGetChannelProfile_EmptyUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewService(mockRepo, nil)

	got, err := service.GetChannelProfile(context.Background(), "   ", uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidUsername)
	assert.Nil(t, got)

	mockRepo.AssertNotCalled(t, "GetChannelProfile", mock.Anything, mock.Anything, mock.Anything)
}

// TestGetChannelProfile_NotFound tests a missing channel
func TestGetChannelProfile_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)

	mockRepo.On("GetChannelProfile", mock.Anything, "ghost", uuid.Nil).Return(nil, ErrUserNotFound)

	service := NewService(mockRepo, nil)

	got, err := service.GetChannelProfile(context.Background(), "ghost", uuid.Nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, got)
}

// TestGetByID_InvalidID tests identity validation
func TestGetByID_InvalidID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewService(mockRepo, nil)

	got, err := service.GetByID(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidUserID)
	assert.Nil(t, got)
}
