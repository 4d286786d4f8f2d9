package like

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/likes"
)

// ToggleLikeHandler handles like toggles across videos, comments and tweets
type ToggleLikeHandler struct {
	service likes.Service
}

// NewToggleLikeHandler creates a new toggle like handler
func NewToggleLikeHandler(service likes.Service) *ToggleLikeHandler {
	return &ToggleLikeHandler{
		service: service,
	}
}

type toggleLikeRequest struct {
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
}

// HandleToggleLike flips the like relation for the authenticated actor
// POST /api/v1/likes/toggle
//
// Request body: { "targetType": "video" | "comment" | "tweet", "targetId": "<uuid>" }
func (h *ToggleLikeHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	var req toggleLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if req.TargetType == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "targetType is required")
		return
	}
	if req.TargetID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "targetId is required")
		return
	}

	targetType, err := likes.ParseTargetType(req.TargetType)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "targetType must be 'video', 'comment' or 'tweet'")
		return
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "targetId must be a valid UUID")
		return
	}

	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	result, err := h.service.Toggle(r.Context(), actorID, targetType, targetID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
