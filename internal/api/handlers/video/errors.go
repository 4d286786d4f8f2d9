package video

import (
	"errors"
	"log"
	"net/http"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/core/storage"
	"Vidtube/internal/core/videos"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, videos.ErrInvalidVideoID):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid video id")
	case errors.Is(err, videos.ErrEmptyTitle):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Title and description are required")
	case errors.Is(err, videos.ErrViewerRequired):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case errors.Is(err, videos.ErrNotOwner):
		handlers.WriteError(w, http.StatusForbidden, "NotOwner", "Only the video owner may do this")
	case errors.Is(err, videos.ErrVideoNotFound):
		handlers.WriteError(w, http.StatusNotFound, "VideoNotFound", "Video not found")
	case errors.Is(err, storage.ErrUnavailable):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StorageUnavailable", "Storage is temporarily unavailable")
	default:
		log.Printf("Video service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to process video request")
	}
}
