// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lostfound/internal/delivery/http/middleware"
	"lostfound/internal/delivery/http/router/handler"
	"lostfound/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DashboardHandler *handler.DashboardHandler
	ListingHandler   *handler.ListingHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	dashboardHandler *handler.DashboardHandler
	listingHandler   *handler.ListingHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dashboardHandler: params.DashboardHandler,
		listingHandler:   params.ListingHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	dashboardGroup := apiV1.Group("/dashboard")
	{
		dashboardGroup.GET("/nearby", r.dashboardHandler.GetNearbyListings)
		dashboardGroup.GET("/nearby.geojson", r.dashboardHandler.GetNearbyListingsGeoJSON)
	}

	listingsGroup := apiV1.Group("/listings")
	{
		listingsGroup.POST("/:id/transitions", r.listingHandler.TransitionListing)
		listingsGroup.GET("/:id/deliveries", r.listingHandler.GetListingDeliveries)
	}
}
