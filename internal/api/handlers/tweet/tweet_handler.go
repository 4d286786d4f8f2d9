package tweet

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/storage"
	"Vidtube/internal/core/tweets"
)

// TweetHandler handles tweet management
type TweetHandler struct {
	service tweets.Service
}

// NewTweetHandler creates a new tweet handler
func NewTweetHandler(service tweets.Service) *TweetHandler {
	return &TweetHandler{
		service: service,
	}
}

type tweetRequest struct {
	Content string `json:"content"`
}

// HandleCreateTweet creates a new tweet owned by the actor
// POST /api/v1/tweets
func (h *TweetHandler) HandleCreateTweet(w http.ResponseWriter, r *http.Request) {
	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	tweet, err := h.service.Create(r.Context(), actorID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, tweet)
}

// HandleGetUserTweets lists a user's tweets, newest first
// GET /api/v1/users/{userID}/tweets
func (h *TweetHandler) HandleGetUserTweets(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "userID must be a valid UUID")
		return
	}

	list, err := h.service.GetByOwner(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"tweets": list,
	})
}

// HandleUpdateTweet replaces a tweet's content; owner only
// PATCH /api/v1/tweets/{tweetID}
func (h *TweetHandler) HandleUpdateTweet(w http.ResponseWriter, r *http.Request) {
	tweetID, err := uuid.Parse(chi.URLParam(r, "tweetID"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "tweetID must be a valid UUID")
		return
	}

	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	tweet, err := h.service.Update(r.Context(), actorID, tweetID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, tweet)
}

// HandleDeleteTweet removes a tweet; owner only
// DELETE /api/v1/tweets/{tweetID}
func (h *TweetHandler) HandleDeleteTweet(w http.ResponseWriter, r *http.Request) {
	tweetID, err := uuid.Parse(chi.URLParam(r, "tweetID"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "tweetID must be a valid UUID")
		return
	}

	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), actorID, tweetID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tweets.ErrInvalidTweetID):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid tweet id")
	case errors.Is(err, tweets.ErrEmptyContent):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Tweet content is required")
	case errors.Is(err, tweets.ErrNotOwner):
		handlers.WriteError(w, http.StatusForbidden, "NotOwner", "Only the tweet owner may do this")
	case errors.Is(err, tweets.ErrTweetNotFound):
		handlers.WriteError(w, http.StatusNotFound, "TweetNotFound", "Tweet not found")
	case errors.Is(err, storage.ErrUnavailable):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StorageUnavailable", "Storage is temporarily unavailable")
	default:
		log.Printf("Tweet service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to process tweet request")
	}
}
