package routes

import (
	"github.com/go-chi/chi/v5"

	"Vidtube/internal/api/handlers/subscription"
	"Vidtube/internal/api/handlers/tweet"
	"Vidtube/internal/api/handlers/user"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/history"
	"Vidtube/internal/core/subscriptions"
	"Vidtube/internal/core/tweets"
)

// UserRoutes returns the per-user routes: watch history, subscribed
// channels and tweets
// Mounted at /api/v1/users
func UserRoutes(historyService history.Service, subService subscriptions.Service, tweetService tweets.Service, auth *middleware.AuthMiddleware) chi.Router {
	historyHandler := user.NewWatchHistoryHandler(historyService)
	subHandler := subscription.NewListSubscriptionsHandler(subService)
	tweetHandler := tweet.NewTweetHandler(tweetService)

	r := chi.NewRouter()

	r.With(auth.RequireAuth).Get("/me/history", historyHandler.HandleGetWatchHistory)

	r.Get("/{userID}/subscriptions", subHandler.HandleGetSubscribedChannels)
	r.Get("/{userID}/tweets", tweetHandler.HandleGetUserTweets)

	return r
}
