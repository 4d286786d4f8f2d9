// Package tweets provides the short text posts that likes may target
// alongside videos and comments.
package tweets

import (
	"time"

	"github.com/google/uuid"
)

// Tweet is a short text post owned by a user.
type Tweet struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Content   string    `json:"content" db:"content"`
	ID        uuid.UUID `json:"id" db:"id"`
	OwnerID   uuid.UUID `json:"owner" db:"owner_id"`
}
