package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"Vidtube/internal/core/history"
)

type postgresHistoryRepo struct {
	db *sql.DB
}

// NewHistoryRepository creates a new PostgreSQL watch-history repository
func NewHistoryRepository(db *sql.DB) history.Repository {
	return &postgresHistoryRepo{db: db}
}

// Record inserts the membership row. The (user_id, video_id) primary key
// makes repeat views no-ops: ON CONFLICT DO NOTHING leaves the original
// watched_at untouched.
func (r *postgresHistoryRepo) Record(ctx context.Context, entry *history.Entry) error {
	query := `
		INSERT INTO watch_history (user_id, video_id, watched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, video_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, entry.UserID, entry.VideoID, entry.WatchedAt)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return fmt.Errorf("watch history references missing user or video: %w", err)
		}
		return fmt.Errorf("failed to record watch history: %w", err)
	}

	return nil
}

// ListByUser joins history rows to video and owner summaries, most recently
// first-watched first.
func (r *postgresHistoryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]history.WatchedVideoView, error) {
	query := `
		SELECT
			h.watched_at,
			v.id, v.title, v.description, v.video_file, v.thumbnail,
			v.duration, v.view_count, v.is_published, v.created_at,
			u.id, u.username, u.full_name, u.avatar
		FROM watch_history h
		JOIN videos v ON v.id = h.video_id
		JOIN users u ON u.id = v.owner_id
		WHERE h.user_id = $1
		ORDER BY h.watched_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watch history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []history.WatchedVideoView{}
	for rows.Next() {
		var view history.WatchedVideoView
		err := rows.Scan(
			&view.WatchedAt,
			&view.Video.ID, &view.Video.Title, &view.Video.Description,
			&view.Video.VideoFile, &view.Video.Thumbnail,
			&view.Video.Duration, &view.Video.ViewCount,
			&view.Video.IsPublished, &view.Video.CreatedAt,
			&view.Video.Owner.ID, &view.Video.Owner.Username,
			&view.Video.Owner.FullName, &view.Video.Owner.Avatar,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watch history entry: %w", err)
		}
		result = append(result, view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watch history: %w", err)
	}

	return result, nil
}
