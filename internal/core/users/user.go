package users

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Username and email are immutable
// after creation; usernames are stored lowercase and matched
// case-normalized. Accounts are created by the external auth collaborator,
// never by this service.
type User struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	Username   string    `json:"username" db:"username"`
	Email      string    `json:"email" db:"email"`
	FullName   string    `json:"fullName" db:"full_name"`
	Avatar     string    `json:"avatar" db:"avatar"`
	CoverImage string    `json:"coverImage,omitempty" db:"cover_image"`
	ID         uuid.UUID `json:"id" db:"id"`
}

// Summary is the compact owner projection embedded in video, comment and
// subscription views (username, full name, avatar).
type Summary struct {
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
	Avatar   string    `json:"avatar"`
	ID       uuid.UUID `json:"id"`
}

// Summary returns the compact projection of the user.
func (u *User) Summary() Summary {
	return Summary{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}

// ChannelProfileView is the viewer-relative channel page. Counts are
// computed on read from subscription rows; IsSubscribed is relative to the
// requesting viewer and always false for anonymous viewers.
type ChannelProfileView struct {
	Username          string    `json:"username"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	Avatar            string    `json:"avatar"`
	CoverImage        string    `json:"coverImage,omitempty"`
	ID                uuid.UUID `json:"id"`
	SubscriberCount   int       `json:"subscriberCount"`
	SubscribedToCount int       `json:"subscribedToCount"`
	IsSubscribed      bool      `json:"isSubscribed"`
}
