package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/comments"
	"Vidtube/internal/core/likes"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// NewCommentLikeCleaner returns the like-table cleaner the comments service
// runs when a comment is deleted.
func NewCommentLikeCleaner(db *sql.DB) comments.LikeCleaner {
	return &postgresLikeRepo{db: db}
}

// Toggle atomically flips the like relation for the natural key
// (liker_id, target_type, target_id).
//
// Step 1 is a conditional delete: if a row matched, the relation is now
// absent and we're done. Step 2 only runs when nothing was deleted: an
// insert guarded by the unique constraint on the natural key. If the insert
// conflicts, a concurrent toggler won the race and the relation is present -
// that's the answer, not an error. There is no find-then-branch anywhere,
// so interleavings can never produce duplicate rows.
func (r *postgresLikeRepo) Toggle(ctx context.Context, likerID uuid.UUID, targetType likes.TargetType, targetID uuid.UUID) (bool, error) {
	deleteQuery := `
		DELETE FROM likes
		WHERE liker_id = $1 AND target_type = $2 AND target_id = $3
	`

	result, err := r.db.ExecContext(ctx, deleteQuery, likerID, string(targetType), targetID)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}
	if deleted > 0 {
		return false, nil
	}

	insertQuery := `
		INSERT INTO likes (id, liker_id, target_type, target_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (liker_id, target_type, target_id) DO NOTHING
	`

	result, err = r.db.ExecContext(ctx, insertQuery,
		uuid.New(), likerID, string(targetType), targetID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to insert like: %w", err)
	}

	// Zero rows inserted means a concurrent toggle created the row first.
	// Either way the like exists now.
	if _, err := result.RowsAffected(); err != nil {
		return false, fmt.Errorf("failed to check insert result: %w", err)
	}

	return true, nil
}

// Exists reports whether the actor currently likes the target
func (r *postgresLikeRepo) Exists(ctx context.Context, likerID uuid.UUID, targetType likes.TargetType, targetID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM likes
			WHERE liker_id = $1 AND target_type = $2 AND target_id = $3
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, likerID, string(targetType), targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return exists, nil
}

// CountByTarget counts the likes on a target. Always computed on read.
func (r *postgresLikeRepo) CountByTarget(ctx context.Context, targetType likes.TargetType, targetID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*) FROM likes
		WHERE target_type = $1 AND target_id = $2
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, string(targetType), targetID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// ListLikedVideos runs the liked-videos pipeline: the actor's video likes
// joined to the video and its owner, newest like first.
func (r *postgresLikeRepo) ListLikedVideos(ctx context.Context, likerID uuid.UUID) ([]likes.LikedVideoView, error) {
	query := `
		SELECT
			l.id, l.created_at,
			v.id, v.title, v.description, v.video_file, v.thumbnail,
			v.duration, v.view_count, v.is_published, v.created_at,
			u.id, u.username, u.full_name, u.avatar
		FROM likes l
		JOIN videos v ON v.id = l.target_id
		JOIN users u ON u.id = v.owner_id
		WHERE l.liker_id = $1 AND l.target_type = 'video'
		ORDER BY l.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, likerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked videos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []likes.LikedVideoView{}
	for rows.Next() {
		var view likes.LikedVideoView
		err := rows.Scan(
			&view.LikeID, &view.LikedAt,
			&view.Video.ID, &view.Video.Title, &view.Video.Description,
			&view.Video.VideoFile, &view.Video.Thumbnail,
			&view.Video.Duration, &view.Video.ViewCount,
			&view.Video.IsPublished, &view.Video.CreatedAt,
			&view.Video.Owner.ID, &view.Video.Owner.Username,
			&view.Video.Owner.FullName, &view.Video.Owner.Avatar,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan liked video: %w", err)
		}
		result = append(result, view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating liked videos: %w", err)
	}

	return result, nil
}

// DeleteByTarget removes every like pointing at a target
func (r *postgresLikeRepo) DeleteByTarget(ctx context.Context, targetType likes.TargetType, targetID uuid.UUID) error {
	query := `DELETE FROM likes WHERE target_type = $1 AND target_id = $2`

	if _, err := r.db.ExecContext(ctx, query, string(targetType), targetID); err != nil {
		return fmt.Errorf("failed to delete likes by target: %w", err)
	}
	return nil
}

// CleanCommentLikes removes the likes of a deleted comment.
// Satisfies comments.LikeCleaner.
func (r *postgresLikeRepo) CleanCommentLikes(ctx context.Context, commentID uuid.UUID) error {
	return r.DeleteByTarget(ctx, likes.TargetComment, commentID)
}
