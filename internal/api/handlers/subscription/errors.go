package subscription

import (
	"errors"
	"log"
	"net/http"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/core/storage"
	"Vidtube/internal/core/subscriptions"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, subscriptions.ErrInvalidChannelID):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid channel id")
	case errors.Is(err, subscriptions.ErrSelfSubscription):
		handlers.WriteError(w, http.StatusBadRequest, "SelfSubscription", "Cannot subscribe to your own channel")
	case errors.Is(err, subscriptions.ErrInvalidActor):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case errors.Is(err, subscriptions.ErrChannelNotFound):
		handlers.WriteError(w, http.StatusNotFound, "ChannelNotFound", "Channel not found")
	case errors.Is(err, storage.ErrUnavailable):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StorageUnavailable", "Storage is temporarily unavailable")
	default:
		log.Printf("Subscription service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to process subscription request")
	}
}
