package routes

import (
	"github.com/go-chi/chi/v5"

	"Vidtube/internal/api/handlers/subscription"
	"Vidtube/internal/api/handlers/user"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/subscriptions"
	"Vidtube/internal/core/users"
)

// ChannelRoutes returns the channel profile and subscriber list routes
// Mounted at /api/v1/channels
func ChannelRoutes(userService users.Service, subService subscriptions.Service, auth *middleware.AuthMiddleware) chi.Router {
	profileHandler := user.NewChannelProfileHandler(userService)
	subHandler := subscription.NewListSubscriptionsHandler(subService)

	r := chi.NewRouter()

	// Both routes share the {channel} segment: the profile resolves it as a
	// username, the subscriber list as a channel UUID.
	r.With(auth.OptionalAuth).Get("/{channel}", profileHandler.HandleGetChannelProfile)

	r.Get("/{channel}/subscribers", subHandler.HandleGetSubscribers)

	return r
}
