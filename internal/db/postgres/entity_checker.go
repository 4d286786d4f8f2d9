package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"Vidtube/internal/core/likes"
)

// EntityChecker answers existence questions across the entity tables. It
// backs the pre-toggle validation in the likes and subscriptions services
// and the video check in the comments service.
type EntityChecker struct {
	db *sql.DB
}

// NewEntityChecker creates an existence checker over the given database
func NewEntityChecker(db *sql.DB) *EntityChecker {
	return &EntityChecker{db: db}
}

// targetTables maps a like target type to the table holding that entity.
// The map is fixed at compile time so target types never reach SQL text
// from client input.
var targetTables = map[likes.TargetType]string{
	likes.TargetVideo:   "videos",
	likes.TargetComment: "comments",
	likes.TargetTweet:   "tweets",
}

// TargetExists checks if the entity behind (targetType, targetID) exists
func (c *EntityChecker) TargetExists(ctx context.Context, targetType likes.TargetType, targetID uuid.UUID) (bool, error) {
	table, ok := targetTables[targetType]
	if !ok {
		return false, fmt.Errorf("unknown like target type %q", targetType)
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)

	var exists bool
	if err := c.db.QueryRowContext(ctx, query, targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", targetType, err)
	}
	return exists, nil
}

// ChannelExists reports whether a user row exists for the channel
func (c *EntityChecker) ChannelExists(ctx context.Context, channelID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := c.db.QueryRowContext(ctx, query, channelID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check channel existence: %w", err)
	}
	return exists, nil
}

// VideoExists reports whether a video row exists
func (c *EntityChecker) VideoExists(ctx context.Context, videoID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM videos WHERE id = $1)`

	var exists bool
	if err := c.db.QueryRowContext(ctx, query, videoID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check video existence: %w", err)
	}
	return exists, nil
}
