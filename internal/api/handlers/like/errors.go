package like

import (
	"errors"
	"log"
	"net/http"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/core/likes"
	"Vidtube/internal/core/storage"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, likes.ErrInvalidTargetType):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid like target type")
	case errors.Is(err, likes.ErrInvalidTargetID):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid like target id")
	case errors.Is(err, likes.ErrInvalidActor):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case errors.Is(err, likes.ErrTargetNotFound):
		handlers.WriteError(w, http.StatusNotFound, "TargetNotFound", "Like target not found")
	case errors.Is(err, storage.ErrUnavailable):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StorageUnavailable", "Storage is temporarily unavailable")
	default:
		log.Printf("Like service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to process like request")
	}
}
