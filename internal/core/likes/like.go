package likes

import (
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/videos"
)

// TargetType tags which kind of entity a like points at. A like references
// exactly one target; the (liker, target type, target id) triple is the
// natural key and is unique in storage.
type TargetType string

const (
	TargetVideo   TargetType = "video"
	TargetComment TargetType = "comment"
	TargetTweet   TargetType = "tweet"
)

// ParseTargetType validates a client-supplied target type string.
func ParseTargetType(s string) (TargetType, error) {
	switch TargetType(s) {
	case TargetVideo, TargetComment, TargetTweet:
		return TargetType(s), nil
	default:
		return "", ErrInvalidTargetType
	}
}

// Like is a relation record: its existence is the entire state. Toggling
// creates the row, toggling again deletes it; there is no soft delete or
// status field.
type Like struct {
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	TargetType TargetType `json:"targetType" db:"target_type"`
	ID         uuid.UUID  `json:"id" db:"id"`
	LikerID    uuid.UUID  `json:"likedBy" db:"liker_id"`
	TargetID   uuid.UUID  `json:"targetId" db:"target_id"`
}

// LikedVideoView is one entry of the liked-videos list: the full video
// summary (with owner) plus when the like was created. Entries are ordered
// by like creation time descending.
type LikedVideoView struct {
	LikedAt time.Time      `json:"likedAt"`
	Video   videos.Summary `json:"video"`
	LikeID  uuid.UUID      `json:"likeId"`
}

// ToggleResult reports the relation state after a toggle returns. The caller
// always receives a definite boolean, even when a concurrent toggle raced.
type ToggleResult struct {
	Liked bool `json:"liked"`
}
