package comment

import (
	"errors"
	"log"
	"net/http"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/core/comments"
	"Vidtube/internal/core/storage"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, comments.ErrInvalidCommentID), errors.Is(err, comments.ErrInvalidVideoID):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid identifier")
	case errors.Is(err, comments.ErrEmptyContent):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment content is required")
	case errors.Is(err, comments.ErrNotOwner):
		handlers.WriteError(w, http.StatusForbidden, "NotOwner", "Only the comment owner may do this")
	case errors.Is(err, comments.ErrCommentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case errors.Is(err, comments.ErrVideoNotFound):
		handlers.WriteError(w, http.StatusNotFound, "VideoNotFound", "Video not found")
	case errors.Is(err, storage.ErrUnavailable):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StorageUnavailable", "Storage is temporarily unavailable")
	default:
		log.Printf("Comment service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to process comment request")
	}
}
