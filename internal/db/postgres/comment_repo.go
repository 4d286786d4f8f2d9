package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"Vidtube/internal/core/comments"
	"Vidtube/internal/core/pagination"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (id, video_id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.VideoID, comment.OwnerID, comment.Content, comment.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return fmt.Errorf("comment references missing video or owner: %w", err)
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	comment.UpdatedAt = comment.CreatedAt
	return nil
}

// GetByID retrieves a raw comment record
func (r *postgresCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*comments.Comment, error) {
	query := `
		SELECT id, video_id, owner_id, content, created_at, updated_at
		FROM comments
		WHERE id = $1
	`

	var comment comments.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.VideoID, &comment.OwnerID,
		&comment.Content, &comment.CreatedAt, &comment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return &comment, nil
}

// UpdateContent persists a new content value
func (r *postgresCommentRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*comments.Comment, error) {
	query := `
		UPDATE comments
		SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, video_id, owner_id, content, created_at, updated_at
	`

	var comment comments.Comment
	err := r.db.QueryRowContext(ctx, query, id, content).Scan(
		&comment.ID, &comment.VideoID, &comment.OwnerID,
		&comment.Content, &comment.CreatedAt, &comment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return &comment, nil
}

// Delete removes the comment row
func (r *postgresCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

// ListByVideo runs the comments-view pipeline for one page: match the
// video's comments, derive like count and the viewer's like state from like
// rows, join the owner summary, newest first, then window.
func (r *postgresCommentRepo) ListByVideo(ctx context.Context, videoID, viewerID uuid.UUID, params pagination.Params) ([]comments.View, int, error) {
	params = params.Normalize()

	countQuery := `SELECT COUNT(*) FROM comments WHERE video_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, videoID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := `
		SELECT
			c.id, c.content, c.created_at,
			u.id, u.username, u.full_name, u.avatar,
			(SELECT COUNT(*) FROM likes l
			 WHERE l.target_type = 'comment' AND l.target_id = c.id) AS like_count,
			EXISTS (
				SELECT 1 FROM likes l
				WHERE l.target_type = 'comment' AND l.target_id = c.id AND l.liker_id = $2
			) AS is_liked
		FROM comments c
		JOIN users u ON u.id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.QueryContext(ctx, query, videoID, viewerID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []comments.View{}
	for rows.Next() {
		var view comments.View
		err := rows.Scan(
			&view.ID, &view.Content, &view.CreatedAt,
			&view.Owner.ID, &view.Owner.Username, &view.Owner.FullName, &view.Owner.Avatar,
			&view.LikeCount, &view.IsLiked,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment view: %w", err)
		}
		result = append(result, view)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, total, nil
}
