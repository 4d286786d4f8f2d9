package user

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/storage"
	"Vidtube/internal/core/users"
)

// ChannelProfileHandler serves the viewer-relative channel profile view
type ChannelProfileHandler struct {
	service users.Service
}

// NewChannelProfileHandler creates a new channel profile handler
func NewChannelProfileHandler(service users.Service) *ChannelProfileHandler {
	return &ChannelProfileHandler{
		service: service,
	}
}

// HandleGetChannelProfile composes the channel profile for a username.
// Usernames are matched case-normalized. Anonymous viewers always see
// isSubscribed=false.
// GET /api/v1/channels/{username}
func (h *ChannelProfileHandler) HandleGetChannelProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "channel")
	if username == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "username is required")
		return
	}

	viewerID := middleware.GetUserID(r)

	profile, err := h.service.GetChannelProfile(r.Context(), username, viewerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, profile)
}

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrInvalidUsername), errors.Is(err, users.ErrInvalidUserID):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid identifier")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "Channel not found")
	case errors.Is(err, storage.ErrUnavailable):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StorageUnavailable", "Storage is temporarily unavailable")
	default:
		log.Printf("User service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to process profile request")
	}
}
