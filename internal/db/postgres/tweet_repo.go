package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"Vidtube/internal/core/tweets"
)

type postgresTweetRepo struct {
	db *sql.DB
}

// NewTweetRepository creates a new PostgreSQL tweet repository
func NewTweetRepository(db *sql.DB) tweets.Repository {
	return &postgresTweetRepo{db: db}
}

func (r *postgresTweetRepo) Create(ctx context.Context, tweet *tweets.Tweet) error {
	query := `
		INSERT INTO tweets (id, owner_id, content, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, tweet.ID, tweet.OwnerID, tweet.Content, tweet.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return fmt.Errorf("tweet owner does not exist: %w", err)
		}
		return fmt.Errorf("failed to insert tweet: %w", err)
	}

	return nil
}

func (r *postgresTweetRepo) GetByID(ctx context.Context, id uuid.UUID) (*tweets.Tweet, error) {
	query := `SELECT id, owner_id, content, created_at FROM tweets WHERE id = $1`

	var tweet tweets.Tweet
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tweet.ID, &tweet.OwnerID, &tweet.Content, &tweet.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, tweets.ErrTweetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tweet by id: %w", err)
	}

	return &tweet, nil
}

func (r *postgresTweetRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]tweets.Tweet, error) {
	query := `
		SELECT id, owner_id, content, created_at
		FROM tweets
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []tweets.Tweet{}
	for rows.Next() {
		var tweet tweets.Tweet
		if err := rows.Scan(&tweet.ID, &tweet.OwnerID, &tweet.Content, &tweet.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tweet: %w", err)
		}
		result = append(result, tweet)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tweets: %w", err)
	}

	return result, nil
}

func (r *postgresTweetRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*tweets.Tweet, error) {
	query := `
		UPDATE tweets
		SET content = $2
		WHERE id = $1
		RETURNING id, owner_id, content, created_at
	`

	var tweet tweets.Tweet
	err := r.db.QueryRowContext(ctx, query, id, content).Scan(
		&tweet.ID, &tweet.OwnerID, &tweet.Content, &tweet.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, tweets.ErrTweetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update tweet: %w", err)
	}

	return &tweet, nil
}

func (r *postgresTweetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tweets WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return tweets.ErrTweetNotFound
	}

	return nil
}

func (r *postgresTweetRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tweets WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check tweet existence: %w", err)
	}
	return exists, nil
}
