package user

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/history"
	"Vidtube/internal/core/storage"
)

// WatchHistoryHandler serves the authenticated user's watch history
type WatchHistoryHandler struct {
	service history.Service
}

// NewWatchHistoryHandler creates a new watch history handler
func NewWatchHistoryHandler(service history.Service) *WatchHistoryHandler {
	return &WatchHistoryHandler{
		service: service,
	}
}

// HandleGetWatchHistory lists the videos the user has watched, most recently
// first-watched first. Repeat views never duplicate or reorder entries.
// GET /api/v1/users/me/history
func (h *WatchHistoryHandler) HandleGetWatchHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	views, err := h.service.GetWatchHistory(r.Context(), userID)
	if err != nil {
		handleHistoryError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"history": views,
	})
}

// handleHistoryError converts history service errors to HTTP responses
func handleHistoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, history.ErrInvalidUserID), errors.Is(err, history.ErrInvalidVideoID):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid identifier")
	case errors.Is(err, storage.ErrUnavailable):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StorageUnavailable", "Storage is temporarily unavailable")
	default:
		log.Printf("History service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to load watch history")
	}
}
