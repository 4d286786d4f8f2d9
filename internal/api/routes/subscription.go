package routes

import (
	"github.com/go-chi/chi/v5"

	"Vidtube/internal/api/handlers/subscription"
	"Vidtube/internal/api/middleware"
	"Vidtube/internal/core/subscriptions"
)

// SubscriptionRoutes returns the subscription toggle routes
// Mounted at /api/v1/subscriptions
func SubscriptionRoutes(service subscriptions.Service, auth *middleware.AuthMiddleware) chi.Router {
	toggleHandler := subscription.NewToggleSubscriptionHandler(service)

	r := chi.NewRouter()
	r.Use(auth.RequireAuth)

	r.Post("/toggle", toggleHandler.HandleToggleSubscription)

	return r
}
