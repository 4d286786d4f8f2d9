package video

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/videos"
)

// ManageVideoHandler handles video publish, update, delete and the publish
// status toggle. All operations require ownership except publish.
type ManageVideoHandler struct {
	service videos.Service
}

// NewManageVideoHandler creates a new manage video handler
func NewManageVideoHandler(service videos.Service) *ManageVideoHandler {
	return &ManageVideoHandler{
		service: service,
	}
}

type publishVideoRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	VideoFile   string  `json:"videoFile"`
	Thumbnail   string  `json:"thumbnail"`
	Duration    float64 `json:"duration"`
}

// HandlePublishVideo creates a new published video owned by the actor
// POST /api/v1/videos
func (h *ManageVideoHandler) HandlePublishVideo(w http.ResponseWriter, r *http.Request) {
	var req publishVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	video, err := h.service.Publish(r.Context(), actorID, videos.PublishRequest{
		Title:       req.Title,
		Description: req.Description,
		VideoFile:   req.VideoFile,
		Thumbnail:   req.Thumbnail,
		Duration:    req.Duration,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, video)
}

type updateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

// HandleUpdateVideo mutates title, description and thumbnail; owner only
// PATCH /api/v1/videos/{videoID}
func (h *ManageVideoHandler) HandleUpdateVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "videoID must be a valid UUID")
		return
	}

	var req updateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	video, err := h.service.Update(r.Context(), actorID, videoID, videos.UpdateRequest{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, video)
}

// HandleDeleteVideo removes a video; owner only
// DELETE /api/v1/videos/{videoID}
func (h *ManageVideoHandler) HandleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "videoID must be a valid UUID")
		return
	}

	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), actorID, videoID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}

// HandleTogglePublish flips the published flag; owner only
// PATCH /api/v1/videos/{videoID}/publish
func (h *ManageVideoHandler) HandleTogglePublish(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "videoID must be a valid UUID")
		return
	}

	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	published, err := h.service.TogglePublishStatus(r.Context(), actorID, videoID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"isPublished": published,
	})
}
