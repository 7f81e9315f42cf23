// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"notifier/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	ConfigHandler       *handler.ConfigHandler
	TokenHandler        *handler.TokenHandler
	ReadStateHandler    *handler.ReadStateHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	configHandler       *handler.ConfigHandler
	tokenHandler        *handler.TokenHandler
	readStateHandler    *handler.ReadStateHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		configHandler:       params.ConfigHandler,
		tokenHandler:        params.TokenHandler,
		readStateHandler:    params.ReadStateHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Legacy-compatible function endpoints. Paths and payloads match the
	// hosted functions they replace, so existing clients keep working.
	e.GET("/getFirebaseConfig", r.configHandler.GetFirebaseConfig)
	e.POST("/sendNotification", r.notificationHandler.SendNotification)
	e.POST("/sendNotificationAsync", r.notificationHandler.SendNotificationAsync)

	// Per-user resources
	userGroup := e.Group("/users/:userId")
	{
		userGroup.POST("/tokens", r.tokenHandler.RegisterToken)
		userGroup.GET("/tokens", r.tokenHandler.ListTokens)
		userGroup.DELETE("/tokens/:token", r.tokenHandler.DeleteToken)

		userGroup.POST("/devices", r.tokenHandler.RegisterCurrentDevice)
		userGroup.DELETE("/devices", r.tokenHandler.DeleteCurrentDevice)

		userGroup.GET("/notifications", r.readStateHandler.ListNotifications)
		userGroup.GET("/notifications/unread-count", r.readStateHandler.UnreadCount)
		userGroup.GET("/notifications/stream", r.readStateHandler.Stream)
		userGroup.POST("/notifications/:notificationId/read", r.readStateHandler.MarkAsRead)
	}
}
