package routes

import (
	"github.com/go-chi/chi/v5"

	"Vidtube/internal/api/handlers/like"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/likes"
)

// LikeRoutes returns the like toggle and liked-videos routes
// Mounted at /api/v1/likes
func LikeRoutes(service likes.Service, auth *middleware.AuthMiddleware) chi.Router {
	toggleHandler := like.NewToggleLikeHandler(service)
	listHandler := like.NewLikedVideosHandler(service)

	r := chi.NewRouter()
	r.Use(auth.RequireAuth)

	r.Post("/toggle", toggleHandler.HandleToggleLike)
	r.Get("/videos", listHandler.HandleGetLikedVideos)

	return r
}
