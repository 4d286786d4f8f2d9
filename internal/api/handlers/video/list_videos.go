package video

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"Vidtube/internal/api/handlers"
	"Vidtube/internal/core/pagination"
	"Vidtube/internal/core/videos"
)

// ListVideosHandler serves the paginated, sorted video listing
type ListVideosHandler struct {
	service videos.Service
}

// NewListVideosHandler creates a new list videos handler
func NewListVideosHandler(service videos.Service) *ListVideosHandler {
	return &ListVideosHandler{
		service: service,
	}
}

// HandleListVideos lists videos with optional title search and owner filter
// GET /api/v1/videos?page=&limit=&query=&sortBy=&sortType=&userId=
//
// Invalid page or limit values fall back to the defaults rather than
// erroring. Only sortType "descending" reverses the sort.
func (h *ListVideosHandler) HandleListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := pagination.Params{
		SortBy:        q.Get("sortBy"),
		SortDirection: q.Get("sortType"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		params.Limit = limit
	}

	filter := videos.ListFilter{Query: q.Get("query")}
	if rawOwner := q.Get("userId"); rawOwner != "" {
		ownerID, err := uuid.Parse(rawOwner)
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "userId must be a valid UUID")
			return
		}
		filter.OwnerID = ownerID
	}

	page, err := h.service.List(r.Context(), filter, params)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, page)
}
