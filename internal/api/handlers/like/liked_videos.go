package like

import (
	"net/http"

	"github.com/google/uuid"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/likes"
)

// LikedVideosHandler serves the authenticated user's liked-videos list
type LikedVideosHandler struct {
	service likes.Service
}

// NewLikedVideosHandler creates a new liked videos handler
func NewLikedVideosHandler(service likes.Service) *LikedVideosHandler {
	return &LikedVideosHandler{
		service: service,
	}
}

// HandleGetLikedVideos lists every video the actor has liked, newest like first
// GET /api/v1/likes/videos
func (h *LikedVideosHandler) HandleGetLikedVideos(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	views, err := h.service.GetLikedVideos(r.Context(), actorID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"videos": views,
	})
}
