package comments

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

// commentService implements the Service interface
type commentService struct {
	repo    Repository
	videos  VideoChecker
	cleaner LikeCleaner
	logger  *slog.Logger
	timeout time.Duration
}

// NewService creates a new comment service instance. cleaner may be nil, in
// which case deleting a comment leaves its like rows behind.
func NewService(repo Repository, videos VideoChecker, cleaner LikeCleaner, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:    repo,
		videos:  videos,
		cleaner: cleaner,
		logger:  logger,
		timeout: storage.DefaultTimeout,
	}
}

func (s *commentService) GetVideoComments(ctx context.Context, videoID, viewerID uuid.UUID, params pagination.Params) (pagination.Page[View], error) {
	var empty pagination.Page[View]

	if videoID == uuid.Nil {
		return empty, ErrInvalidVideoID
	}
	params = params.Normalize()

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	exists, err := s.videos.VideoExists(ctx, videoID)
	if err != nil {
		return empty, fmt.Errorf("failed to check video: %w", storage.Classify(err))
	}
	if !exists {
		return empty, ErrVideoNotFound
	}

	views, total, err := s.repo.ListByVideo(ctx, videoID, viewerID, params)
	if err != nil {
		return empty, fmt.Errorf("failed to list comments: %w", storage.Classify(err))
	}

	return pagination.NewPage(views, params, total), nil
}

func (s *commentService) Add(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*Comment, error) {
	if videoID == uuid.Nil {
		return nil, ErrInvalidVideoID
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	exists, err := s.videos.VideoExists(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check video: %w", storage.Classify(err))
	}
	if !exists {
		return nil, ErrVideoNotFound
	}

	now := time.Now().UTC()
	comment := &Comment{
		ID:        uuid.New(),
		VideoID:   videoID,
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", storage.Classify(err))
	}

	s.logger.Info("comment added",
		"comment", comment.ID,
		"video", videoID,
		"owner", ownerID)

	return comment, nil
}

func (s *commentService) Update(ctx context.Context, actorID, commentID uuid.UUID, content string) (*Comment, error) {
	if commentID == uuid.Nil {
		return nil, ErrInvalidCommentID
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.requireOwner(ctx, actorID, commentID); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", storage.Classify(err))
	}

	return updated, nil
}

func (s *commentService) Delete(ctx context.Context, actorID, commentID uuid.UUID) error {
	if commentID == uuid.Nil {
		return ErrInvalidCommentID
	}

	ctx, cancel := storage.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.requireOwner(ctx, actorID, commentID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", storage.Classify(err))
	}

	// Likes on the deleted comment are dangling relation rows; clean them up
	// best-effort so counts elsewhere stay honest.
	if s.cleaner != nil {
		if err := s.cleaner.CleanCommentLikes(ctx, commentID); err != nil {
			s.logger.Warn("failed to clean likes of deleted comment",
				"error", err,
				"comment", commentID)
		}
	}

	s.logger.Info("comment deleted",
		"comment", commentID,
		"actor", actorID)

	return nil
}

func (s *commentService) requireOwner(ctx context.Context, actorID, commentID uuid.UUID) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		if err == ErrCommentNotFound {
			return err
		}
		return storage.Classify(err)
	}
	if comment.OwnerID != actorID {
		return ErrNotOwner
	}
	return nil
}
