package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/comments"
	"Vidtube/internal/core/pagination"
)

// CommentHandler handles the paginated comments view and comment management
type CommentHandler struct {
	service comments.Service
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service comments.Service) *CommentHandler {
	return &CommentHandler{
		service: service,
	}
}

// HandleGetVideoComments returns one page of a video's comments, newest
// first, annotated with like counts and the viewer's like state. Anonymous
// viewers get isLiked=false everywhere.
// GET /api/v1/videos/{videoID}/comments?page=&limit=
func (h *CommentHandler) HandleGetVideoComments(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "videoID must be a valid UUID")
		return
	}

	q := r.URL.Query()
	params := pagination.Params{}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		params.Limit = limit
	}

	viewerID := middleware.GetUserID(r)

	page, err := h.service.GetVideoComments(r.Context(), videoID, viewerID, params)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, page)
}

type commentRequest struct {
	Content string `json:"content"`
}

// HandleAddComment attaches a new comment to a video
// POST /api/v1/videos/{videoID}/comments
func (h *CommentHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "videoID must be a valid UUID")
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	comment, err := h.service.Add(r.Context(), videoID, actorID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, comment)
}

// HandleUpdateComment replaces a comment's content; owner only
// PATCH /api/v1/comments/{commentID}
func (h *CommentHandler) HandleUpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "commentID must be a valid UUID")
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	comment, err := h.service.Update(r.Context(), actorID, commentID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, comment)
}

// HandleDeleteComment removes a comment and its likes; owner only
// DELETE /api/v1/comments/{commentID}
func (h *CommentHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "commentID must be a valid UUID")
		return
	}

	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), actorID, commentID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}
