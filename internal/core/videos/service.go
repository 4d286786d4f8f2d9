package videos

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/pagination"
	"Vidtube/internal/core/storage"
)

// videoService implements the Service interface for video operations
type videoService struct {
	repo     Repository
	recorder ViewRecorder
	logger   *slog.Logger
	timeout  time.Duration
}

// NewService creates a new video service instance. recorder may be nil, in
// which case detail reads skip watch-history recording.
func NewService(repo Repository, recorder ViewRecorder, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &videoService{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
		timeout:  storage.DefaultTimeout,
	}
}

// GetDetail composes the video detail view for the viewer.
// Order matters: the view counter is bumped before the view is composed so
// the response reflects the read that is happening. Both side effects are
// best-effort - a failure is logged and the read proceeds.
func (s *videoService) GetDetail(ctx context.Context, videoID, viewerID uuid.UUID) (*DetailView, error) {
	if videoID == uuid.Nil {
		return nil, ErrInvalidVideoID
	}
	if viewerID == uuid.Nil {
		return nil, ErrViewerRequired
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Verify the video exists before touching counters, so a read of a
	// missing video is a clean NotFound with no side effects.
	exists, err := s.repo.Exists(ctx, videoID)
	if err != nil {
		return nil, storage.Classify(err)
	}
	if !exists {
		return nil, ErrVideoNotFound
	}

	if err := s.repo.IncrementViews(ctx, videoID); err != nil {
		s.logger.Warn("failed to increment view count",
			"error", err,
			"video", videoID)
	}

	detail, err := s.repo.GetDetail(ctx, videoID, viewerID)
	if err != nil {
		if err == ErrVideoNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to compose video detail: %w", storage.Classify(err))
	}

	if s.recorder != nil {
		if err := s.recorder.RecordView(ctx, viewerID, videoID); err != nil {
			s.logger.Warn("failed to record watch history",
				"error", err,
				"viewer", viewerID,
				"video", videoID)
		}
	}

	return detail, nil
}

func (s *videoService) List(ctx context.Context, filter ListFilter, params pagination.Params) (pagination.Page[Summary], error) {
	params = params.Normalize()

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	items, total, err := s.repo.List(ctx, filter, params)
	if err != nil {
		return pagination.Page[Summary]{}, fmt.Errorf("failed to list videos: %w", storage.Classify(err))
	}

	return pagination.NewPage(items, params, total), nil
}

func (s *videoService) Publish(ctx context.Context, ownerID uuid.UUID, req PublishRequest) (*Video, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidVideoID
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, ErrEmptyTitle
	}

	video := &Video{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		VideoFile:   req.VideoFile,
		Thumbnail:   req.Thumbnail,
		Duration:    req.Duration,
		IsPublished: true,
		CreatedAt:   time.Now().UTC(),
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to publish video: %w", storage.Classify(err))
	}

	s.logger.Info("video published",
		"video", video.ID,
		"owner", ownerID,
		"title", video.Title)

	return video, nil
}

func (s *videoService) Update(ctx context.Context, actorID, videoID uuid.UUID, req UpdateRequest) (*Video, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, ErrEmptyTitle
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	video, err := s.ownedVideo(ctx, actorID, videoID)
	if err != nil {
		return nil, err
	}

	video.Title = req.Title
	video.Description = req.Description
	if req.Thumbnail != "" {
		video.Thumbnail = req.Thumbnail
	}

	if err := s.repo.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to update video: %w", storage.Classify(err))
	}

	return video, nil
}

func (s *videoService) Delete(ctx context.Context, actorID, videoID uuid.UUID) error {
	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	video, err := s.ownedVideo(ctx, actorID, videoID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, video.ID); err != nil {
		return fmt.Errorf("failed to delete video: %w", storage.Classify(err))
	}

	s.logger.Info("video deleted",
		"video", videoID,
		"owner", actorID)

	return nil
}

func (s *videoService) TogglePublishStatus(ctx context.Context, actorID, videoID uuid.UUID) (bool, error) {
	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	video, err := s.ownedVideo(ctx, actorID, videoID)
	if err != nil {
		return false, err
	}

	video.IsPublished = !video.IsPublished
	if err := s.repo.Update(ctx, video); err != nil {
		return false, fmt.Errorf("failed to toggle publish status: %w", storage.Classify(err))
	}

	return video.IsPublished, nil
}

// ownedVideo loads a video and verifies the actor owns it. Ownership is
// checked before any mutation so Forbidden wins over storage errors.
func (s *videoService) ownedVideo(ctx context.Context, actorID, videoID uuid.UUID) (*Video, error) {
	if videoID == uuid.Nil {
		return nil, ErrInvalidVideoID
	}

	video, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		if err == ErrVideoNotFound {
			return nil, err
		}
		return nil, storage.Classify(err)
	}

	if video.OwnerID != actorID {
		return nil, ErrNotOwner
	}

	return video, nil
}
