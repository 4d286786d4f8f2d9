package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"Vidtube/internal/core/pagination"
	"Vidtube/internal/core/videos"
)

type postgresVideoRepo struct {
	db *sql.DB
}

// NewVideoRepository creates a new PostgreSQL video repository
func NewVideoRepository(db *sql.DB) videos.Repository {
	return &postgresVideoRepo{db: db}
}

// Create inserts a new video record
func (r *postgresVideoRepo) Create(ctx context.Context, video *videos.Video) error {
	query := `
		INSERT INTO videos (
			id, owner_id, title, description, video_file, thumbnail,
			duration, view_count, is_published, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		video.ID, video.OwnerID, video.Title, video.Description,
		video.VideoFile, video.Thumbnail, video.Duration,
		video.IsPublished, video.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return fmt.Errorf("video owner does not exist: %w", err)
		}
		return fmt.Errorf("failed to insert video: %w", err)
	}

	return nil
}

// GetByID retrieves a raw video record
func (r *postgresVideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*videos.Video, error) {
	query := `
		SELECT id, owner_id, title, description, video_file, thumbnail,
		       duration, view_count, is_published, created_at
		FROM videos
		WHERE id = $1
	`

	var video videos.Video
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&video.ID, &video.OwnerID, &video.Title, &video.Description,
		&video.VideoFile, &video.Thumbnail, &video.Duration,
		&video.ViewCount, &video.IsPublished, &video.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, videos.ErrVideoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video by id: %w", err)
	}

	return &video, nil
}

// Update persists the mutable fields of a video
func (r *postgresVideoRepo) Update(ctx context.Context, video *videos.Video) error {
	query := `
		UPDATE videos
		SET title = $2, description = $3, thumbnail = $4, is_published = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		video.ID, video.Title, video.Description, video.Thumbnail, video.IsPublished)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return videos.ErrVideoNotFound
	}

	return nil
}

// Delete removes the video row
func (r *postgresVideoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM videos WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return videos.ErrVideoNotFound
	}

	return nil
}

// IncrementViews bumps the monotonic view counter by one
func (r *postgresVideoRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE videos SET view_count = view_count + 1 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// Exists reports whether a video row exists
func (r *postgresVideoRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM videos WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check video existence: %w", err)
	}
	return exists, nil
}

// GetDetail runs the detail-view pipeline in one query: match the video,
// join the owner, derive the owner's subscriber count and the viewer's
// subscription state, and derive like count and the viewer's like state.
func (r *postgresVideoRepo) GetDetail(ctx context.Context, videoID, viewerID uuid.UUID) (*videos.DetailView, error) {
	query := `
		SELECT
			v.id, v.title, v.description, v.video_file, v.thumbnail,
			v.duration, v.view_count, v.created_at,
			u.id, u.username, u.full_name, u.avatar,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id) AS subscriber_count,
			EXISTS (
				SELECT 1 FROM subscriptions s
				WHERE s.channel_id = u.id AND s.subscriber_id = $2
			) AS is_subscribed,
			(SELECT COUNT(*) FROM likes l WHERE l.target_type = 'video' AND l.target_id = v.id) AS like_count,
			EXISTS (
				SELECT 1 FROM likes l
				WHERE l.target_type = 'video' AND l.target_id = v.id AND l.liker_id = $2
			) AS is_liked
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE v.id = $1
	`

	var view videos.DetailView
	err := r.db.QueryRowContext(ctx, query, videoID, viewerID).Scan(
		&view.ID, &view.Title, &view.Description, &view.VideoFile, &view.Thumbnail,
		&view.Duration, &view.ViewCount, &view.CreatedAt,
		&view.Owner.ID, &view.Owner.Username, &view.Owner.FullName, &view.Owner.Avatar,
		&view.Owner.SubscriberCount, &view.Owner.IsSubscribed,
		&view.LikeCount, &view.IsLiked,
	)
	if err == sql.ErrNoRows {
		return nil, videos.ErrVideoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video detail: %w", err)
	}

	return &view, nil
}

// videoSortColumns whitelists the sortable columns so client input never
// reaches the ORDER BY clause directly.
var videoSortColumns = map[string]string{
	"createdAt": "v.created_at",
	"title":     "v.title",
	"duration":  "v.duration",
	"views":     "v.view_count",
}

// List returns a window of video summaries plus the unwindowed total.
// Sort defaults to ascending creation order; only the literal sort
// direction "descending" reverses it.
func (r *postgresVideoRepo) List(ctx context.Context, filter videos.ListFilter, params pagination.Params) ([]videos.Summary, int, error) {
	params = params.Normalize()

	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		where = append(where, fmt.Sprintf("v.title ILIKE $%d", len(args)))
	}
	if filter.OwnerID != uuid.Nil {
		args = append(args, filter.OwnerID)
		where = append(where, fmt.Sprintf("v.owner_id = $%d", len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM videos v WHERE %s`, whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	orderColumn, ok := videoSortColumns[params.SortBy]
	if !ok {
		orderColumn = "v.created_at"
	}
	direction := "ASC"
	if params.Descending() {
		direction = "DESC"
	}

	args = append(args, params.Limit)
	limitArg := len(args)
	args = append(args, params.Offset())
	offsetArg := len(args)

	query := fmt.Sprintf(`
		SELECT
			v.id, v.title, v.description, v.video_file, v.thumbnail,
			v.duration, v.view_count, v.is_published, v.created_at,
			u.id, u.username, u.full_name, u.avatar
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderColumn, direction, limitArg, offsetArg)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list videos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []videos.Summary{}
	for rows.Next() {
		var summary videos.Summary
		err := rows.Scan(
			&summary.ID, &summary.Title, &summary.Description,
			&summary.VideoFile, &summary.Thumbnail,
			&summary.Duration, &summary.ViewCount,
			&summary.IsPublished, &summary.CreatedAt,
			&summary.Owner.ID, &summary.Owner.Username,
			&summary.Owner.FullName, &summary.Owner.Avatar,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan video summary: %w", err)
		}
		result = append(result, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating videos: %w", err)
	}

	return result, total, nil
}
