package auth

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	// SessionName is the cookie name for browser sessions
	SessionName = "vidtube_session"

	// sessionUserIDKey is the session value holding the user ID
	sessionUserIDKey = "user_id"

	// MinCookieSecretLength is the minimum byte length for the cookie secret
	MinCookieSecretLength = 32
)

var (
	// Global singleton cookie store
	cookieStoreInstance *sessions.CookieStore
	cookieStoreOnce     sync.Once
	cookieStoreErr      error
)

// InitCookieStore initializes the global cookie store singleton
// Must be called once at application startup before any handlers are created
func InitCookieStore(secret string) error {
	cookieStoreOnce.Do(func() {
		if len(secret) < MinCookieSecretLength {
			cookieStoreErr = fmt.Errorf("SESSION_COOKIE_SECRET must be at least %d bytes for security", MinCookieSecretLength)
			return
		}
		store := sessions.NewCookieStore([]byte(secret))
		store.Options = &sessions.Options{
			Path:     "/",
			MaxAge:   86400 * 7,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		cookieStoreInstance = store
	})
	return cookieStoreErr
}

// GetCookieStore returns the global cookie store singleton
// Panics if InitCookieStore has not been called successfully
func GetCookieStore() *sessions.CookieStore {
	if cookieStoreInstance == nil {
		panic("cookie store not initialized - call InitCookieStore first")
	}
	return cookieStoreInstance
}

// SessionUserID reads the authenticated user ID from the browser session
// cookie. Returns uuid.Nil when the session is absent or carries no user.
func SessionUserID(r *http.Request) uuid.UUID {
	if cookieStoreInstance == nil {
		return uuid.Nil
	}

	session, err := cookieStoreInstance.Get(r, SessionName)
	if err != nil {
		return uuid.Nil
	}

	raw, ok := session.Values[sessionUserIDKey].(string)
	if !ok {
		return uuid.Nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// SaveSessionUserID writes the user ID into the browser session cookie.
func SaveSessionUserID(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	session, err := GetCookieStore().Get(r, SessionName)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	session.Values[sessionUserIDKey] = userID.String()
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// ClearSession expires the browser session cookie.
func ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, err := GetCookieStore().Get(r, SessionName)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
