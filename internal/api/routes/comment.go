package routes

import (
	"github.com/go-chi/chi/v5"

	"Vidtube/internal/api/handlers/comment"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/comments"
)

// CommentRoutes returns the comment management routes
// Mounted at /api/v1/comments
func CommentRoutes(service comments.Service, auth *middleware.AuthMiddleware) chi.Router {
	h := comment.NewCommentHandler(service)

	r := chi.NewRouter()
	r.Use(auth.RequireAuth)

	r.Patch("/{commentID}", h.HandleUpdateComment)
	r.Delete("/{commentID}", h.HandleDeleteComment)

	return r
}
