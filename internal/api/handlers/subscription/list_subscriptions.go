package subscription

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/core/subscriptions"
)

// ListSubscriptionsHandler serves the two subscription list views
type ListSubscriptionsHandler struct {
	service subscriptions.Service
}

// NewListSubscriptionsHandler creates a new subscription list handler
func NewListSubscriptionsHandler(service subscriptions.Service) *ListSubscriptionsHandler {
	return &ListSubscriptionsHandler{
		service: service,
	}
}

// HandleGetSubscribers lists a channel's subscribers with their own
// subscriber counts and subscribed-back state
// GET /api/v1/channels/{channel}/subscribers
func (h *ListSubscriptionsHandler) HandleGetSubscribers(w http.ResponseWriter, r *http.Request) {
	channelID, err := uuid.Parse(chi.URLParam(r, "channel"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "channel must be a valid UUID")
		return
	}

	views, err := h.service.GetSubscribers(r.Context(), channelID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"subscribers": views,
	})
}

// HandleGetSubscribedChannels lists the channels a user subscribes to, each
// with the channel's latest video when one exists
// GET /api/v1/users/{userID}/subscriptions
func (h *ListSubscriptionsHandler) HandleGetSubscribedChannels(w http.ResponseWriter, r *http.Request) {
	subscriberID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "userID must be a valid UUID")
		return
	}

	views, err := h.service.GetSubscribedChannels(r.Context(), subscriberID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"channels": views,
	})
}
