package routes

import (
	"github.com/go-chi/chi/v5"

	"Vidtube/internal/api/handlers/tweet"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/tweets"
)

// TweetRoutes returns the tweet management routes
// Mounted at /api/v1/tweets
func TweetRoutes(service tweets.Service, auth *middleware.AuthMiddleware) chi.Router {
	h := tweet.NewTweetHandler(service)

	r := chi.NewRouter()
	r.Use(auth.RequireAuth)

	r.Post("/", h.HandleCreateTweet)
	r.Patch("/{tweetID}", h.HandleUpdateTweet)
	r.Delete("/{tweetID}", h.HandleDeleteTweet)

	return r
}
