package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/subscriptions"
	"Vidtube/internal/core/videos"
)

type postgresSubscriptionRepo struct {
	db *sql.DB
}

// NewSubscriptionRepository creates a new PostgreSQL subscription repository
func NewSubscriptionRepository(db *sql.DB) subscriptions.Repository {
	return &postgresSubscriptionRepo{db: db}
}

// Toggle atomically flips the subscription for (subscriber_id, channel_id).
// Same protocol as like toggling: conditional delete first, unique-guarded
// insert only if nothing was deleted, conflict means a concurrent toggler
// already subscribed. The check constraint on the table backs up the
// service-level self-subscription rejection.
func (r *postgresSubscriptionRepo) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	deleteQuery := `
		DELETE FROM subscriptions
		WHERE subscriber_id = $1 AND channel_id = $2
	`

	result, err := r.db.ExecContext(ctx, deleteQuery, subscriberID, channelID)
	if err != nil {
		return false, fmt.Errorf("failed to delete subscription: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}
	if deleted > 0 {
		return false, nil
	}

	insertQuery := `
		INSERT INTO subscriptions (id, subscriber_id, channel_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (subscriber_id, channel_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, insertQuery,
		uuid.New(), subscriberID, channelID, time.Now().UTC()); err != nil {
		if strings.Contains(err.Error(), "chk_no_self_subscription") {
			return false, subscriptions.ErrSelfSubscription
		}
		return false, fmt.Errorf("failed to insert subscription: %w", err)
	}

	return true, nil
}

// Exists reports whether subscriber currently follows channel
func (r *postgresSubscriptionRepo) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM subscriptions
			WHERE subscriber_id = $1 AND channel_id = $2
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, subscriberID, channelID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check subscription existence: %w", err)
	}
	return exists, nil
}

// CountByChannel counts a channel's subscribers. Always computed on read.
func (r *postgresSubscriptionRepo) CountByChannel(ctx context.Context, channelID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, channelID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

// ListSubscribers runs the subscriber-list pipeline: subscriptions to the
// channel joined to the subscriber user, each derived with that user's own
// subscriber count and whether the channel subscribes back to them.
func (r *postgresSubscriptionRepo) ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]subscriptions.SubscriberView, error) {
	query := `
		SELECT
			s.created_at,
			u.id, u.username, u.full_name, u.avatar,
			(SELECT COUNT(*) FROM subscriptions s2 WHERE s2.channel_id = u.id) AS subscriber_count,
			EXISTS (
				SELECT 1 FROM subscriptions s3
				WHERE s3.subscriber_id = $1 AND s3.channel_id = u.id
			) AS subscribed_back
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []subscriptions.SubscriberView{}
	for rows.Next() {
		var view subscriptions.SubscriberView
		err := rows.Scan(
			&view.SubscribedAt,
			&view.Subscriber.ID, &view.Subscriber.Username,
			&view.Subscriber.FullName, &view.Subscriber.Avatar,
			&view.SubscriberCount, &view.SubscribedBack,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		result = append(result, view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscribers: %w", err)
	}

	return result, nil
}

// ListSubscribedChannels runs the subscribed-channels pipeline: the user's
// subscriptions joined to the channel user plus the channel's most recently
// created video via a lateral join. Channels with no videos get a null
// latest video.
func (r *postgresSubscriptionRepo) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]subscriptions.SubscribedChannelView, error) {
	query := `
		SELECT
			s.created_at,
			u.id, u.username, u.full_name, u.avatar,
			lv.id, lv.title, lv.description, lv.video_file, lv.thumbnail,
			lv.duration, lv.view_count, lv.is_published, lv.created_at
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		LEFT JOIN LATERAL (
			SELECT id, title, description, video_file, thumbnail,
			       duration, view_count, is_published, created_at
			FROM videos v
			WHERE v.owner_id = u.id
			ORDER BY v.created_at DESC
			LIMIT 1
		) lv ON true
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribed channels: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []subscriptions.SubscribedChannelView{}
	for rows.Next() {
		var view subscriptions.SubscribedChannelView
		var videoID sql.Null[uuid.UUID]
		var title, description, videoFile, thumbnail sql.NullString
		var duration sql.NullFloat64
		var viewCount sql.NullInt64
		var isPublished sql.NullBool
		var videoCreatedAt sql.NullTime

		err := rows.Scan(
			&view.SubscribedAt,
			&view.Channel.ID, &view.Channel.Username,
			&view.Channel.FullName, &view.Channel.Avatar,
			&videoID, &title, &description, &videoFile, &thumbnail,
			&duration, &viewCount, &isPublished, &videoCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscribed channel: %w", err)
		}

		if videoID.Valid {
			view.LatestVideo = &videos.Summary{
				ID:          videoID.V,
				Title:       title.String,
				Description: description.String,
				VideoFile:   videoFile.String,
				Thumbnail:   thumbnail.String,
				Duration:    duration.Float64,
				ViewCount:   viewCount.Int64,
				IsPublished: isPublished.Bool,
				CreatedAt:   videoCreatedAt.Time,
				Owner:       view.Channel,
			}
		}

		result = append(result, view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscribed channels: %w", err)
	}

	return result, nil
}
