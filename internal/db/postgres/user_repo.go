package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"Vidtube/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// GetByID retrieves a user by identity key
func (r *postgresUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*users.User, error) {
	query := `
		SELECT id, username, email, full_name, avatar, cover_image, created_at
		FROM users
		WHERE id = $1
	`

	var user users.User
	var coverImage sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email,
		&user.FullName, &user.Avatar, &coverImage, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	user.CoverImage = coverImage.String
	return &user, nil
}

// GetByUsername retrieves a user by lowercase username
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	query := `
		SELECT id, username, email, full_name, avatar, cover_image, created_at
		FROM users
		WHERE username = $1
	`

	var user users.User
	var coverImage sql.NullString

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email,
		&user.FullName, &user.Avatar, &coverImage, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	user.CoverImage = coverImage.String
	return &user, nil
}

// GetChannelProfile runs the channel-profile pipeline in one query: match
// the user by username, derive both subscription counts and the viewer's
// subscription state from subscription rows. viewerID may be uuid.Nil, which
// matches no subscription and yields isSubscribed=false.
func (r *postgresUserRepo) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*users.ChannelProfileView, error) {
	query := `
		SELECT
			u.id, u.username, u.full_name, u.email, u.avatar, u.cover_image,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id) AS subscriber_count,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id) AS subscribed_to_count,
			EXISTS (
				SELECT 1 FROM subscriptions s
				WHERE s.channel_id = u.id AND s.subscriber_id = $2
			) AS is_subscribed
		FROM users u
		WHERE u.username = $1
	`

	var profile users.ChannelProfileView
	var coverImage sql.NullString

	err := r.db.QueryRowContext(ctx, query, username, viewerID).Scan(
		&profile.ID, &profile.Username, &profile.FullName,
		&profile.Email, &profile.Avatar, &coverImage,
		&profile.SubscriberCount, &profile.SubscribedToCount, &profile.IsSubscribed,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel profile: %w", err)
	}

	profile.CoverImage = coverImage.String
	return &profile, nil
}
