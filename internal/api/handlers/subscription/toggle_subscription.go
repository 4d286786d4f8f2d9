package subscription

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/subscriptions"
)

// ToggleSubscriptionHandler handles subscription toggles
type ToggleSubscriptionHandler struct {
	service subscriptions.Service
}

// NewToggleSubscriptionHandler creates a new toggle subscription handler
func NewToggleSubscriptionHandler(service subscriptions.Service) *ToggleSubscriptionHandler {
	return &ToggleSubscriptionHandler{
		service: service,
	}
}

type toggleSubscriptionRequest struct {
	ChannelID string `json:"channelId"`
}

// HandleToggleSubscription flips the actor's subscription to a channel
// POST /api/v1/subscriptions/toggle
//
// Request body: { "channelId": "<uuid>" }
func (h *ToggleSubscriptionHandler) HandleToggleSubscription(w http.ResponseWriter, r *http.Request) {
	var req toggleSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if req.ChannelID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "channelId is required")
		return
	}

	channelID, err := uuid.Parse(req.ChannelID)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "channelId must be a valid UUID")
		return
	}

	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	result, err := h.service.Toggle(r.Context(), actorID, channelID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
