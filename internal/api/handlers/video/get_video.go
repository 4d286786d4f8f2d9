package video

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/videos"
)

// GetVideoHandler serves the viewer-relative video detail view
type GetVideoHandler struct {
	service videos.Service
}

// NewGetVideoHandler creates a new get video handler
func NewGetVideoHandler(service videos.Service) *GetVideoHandler {
	return &GetVideoHandler{
		service: service,
	}
}

// HandleGetVideo composes the video detail view for the authenticated
// viewer. Viewing increments the view counter and records the video in the
// viewer's watch history.
// GET /api/v1/videos/{videoID}
func (h *GetVideoHandler) HandleGetVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "videoID must be a valid UUID")
		return
	}

	viewerID := middleware.GetUserID(r)
	if viewerID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	view, err := h.service.GetDetail(r.Context(), videoID, viewerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}
