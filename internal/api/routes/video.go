package routes

import (
	"github.com/go-chi/chi/v5"

	"Vidtube/internal/api/handlers/comment"
	"Vidtube/internal/api/handlers/video"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/comments"
	"Vidtube/internal/core/videos"
)

// VideoRoutes returns the video listing, detail, management and comment
// routes
// Mounted at /api/v1/videos
func VideoRoutes(videoService videos.Service, commentService comments.Service, auth *middleware.AuthMiddleware) chi.Router {
	getHandler := video.NewGetVideoHandler(videoService)
	listHandler := video.NewListVideosHandler(videoService)
	manageHandler := video.NewManageVideoHandler(videoService)
	commentHandler := comment.NewCommentHandler(commentService)

	r := chi.NewRouter()

	// Listing works anonymously; the detail view needs a viewer because it
	// records watch history
	r.With(auth.OptionalAuth).Get("/", listHandler.HandleListVideos)
	r.With(auth.RequireAuth).Post("/", manageHandler.HandlePublishVideo)

	r.Route("/{videoID}", func(r chi.Router) {
		r.With(auth.RequireAuth).Get("/", getHandler.HandleGetVideo)
		r.With(auth.RequireAuth).Patch("/", manageHandler.HandleUpdateVideo)
		r.With(auth.RequireAuth).Delete("/", manageHandler.HandleDeleteVideo)
		r.With(auth.RequireAuth).Patch("/publish", manageHandler.HandleTogglePublish)

		r.With(auth.OptionalAuth).Get("/comments", commentHandler.HandleGetVideoComments)
		r.With(auth.RequireAuth).Post("/comments", commentHandler.HandleAddComment)
	})

	return r
}
