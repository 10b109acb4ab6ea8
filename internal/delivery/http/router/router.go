// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pokeradar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IngestHandler       *handler.IngestHandler
	UserHandler         *handler.UserHandler
	SubscriptionHandler *handler.SubscriptionHandler
	SpeciesHandler      *handler.SpeciesHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	ingestHandler       *handler.IngestHandler
	userHandler         *handler.UserHandler
	subscriptionHandler *handler.SubscriptionHandler
	speciesHandler      *handler.SpeciesHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		ingestHandler:       params.IngestHandler,
		userHandler:         params.UserHandler,
		subscriptionHandler: params.SubscriptionHandler,
		speciesHandler:      params.SpeciesHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Spawn feed ingestion
	e.POST("/spawns", r.ingestHandler.RegisterSpawn)

	// User account and per-user state
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.RegisterUser)
		userGroup.GET("/:chat_id", r.userHandler.GetUser)
		userGroup.PUT("/:chat_id/position", r.userHandler.UpdatePosition)
		userGroup.PUT("/:chat_id/radius", r.userHandler.SetRadius)

		userGroup.GET("/:chat_id/filters", r.subscriptionHandler.ListFilters)
		userGroup.POST("/:chat_id/filters", r.subscriptionHandler.AddFilters)
		userGroup.DELETE("/:chat_id/filters/:species", r.subscriptionHandler.RemoveFilter)
	}

	// Species reference catalog
	speciesGroup := e.Group("/species")
	{
		speciesGroup.GET("", r.speciesHandler.ListSpecies)
		speciesGroup.POST("", r.speciesHandler.SaveSpecies)
	}
}
