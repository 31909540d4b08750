// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"punchsync/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler *handler.DeviceHandler
	SyncHandler   *handler.SyncHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler *handler.DeviceHandler
	syncHandler   *handler.SyncHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler: params.DeviceHandler,
		syncHandler:   params.SyncHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Device registry routes
	deviceGroup := e.Group("/devices")
	{
		deviceGroup.GET("", r.deviceHandler.ListDevices)
		deviceGroup.GET("/:id", r.deviceHandler.GetDevice)
		deviceGroup.POST("/:id/test", r.deviceHandler.TestConnection)
	}

	// Sync routes
	syncGroup := e.Group("/sync")
	{
		syncGroup.POST("", r.syncHandler.SyncAll)
		syncGroup.POST("/:id", r.syncHandler.SyncOne)
		syncGroup.GET("/logs", r.syncHandler.RecentLogs)
	}
}
