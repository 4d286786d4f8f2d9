package comments

import (
	"time"

	"github.com/google/uuid"

	"Vidtube/internal/core/users"
)

// Comment belongs to exactly one video and is owned by one user. Content is
// the only mutable field.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Content   string    `json:"content" db:"content"`
	ID        uuid.UUID `json:"id" db:"id"`
	VideoID   uuid.UUID `json:"video" db:"video_id"`
	OwnerID   uuid.UUID `json:"owner" db:"owner_id"`
}

// View is the viewer-relative comment projection used in the paginated
// video-comments list: content plus like count, the viewer's like state and
// the owner summary.
type View struct {
	CreatedAt time.Time     `json:"createdAt"`
	Content   string        `json:"content"`
	Owner     users.Summary `json:"owner"`
	ID        uuid.UUID     `json:"id"`
	LikeCount int           `json:"likeCount"`
	IsLiked   bool          `json:"isLiked"`
}
