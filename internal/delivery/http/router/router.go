// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beautymap/internal/delivery/http/middleware"
	"beautymap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler      *handler.ProfileHandler
	CatalogHandler      *handler.CatalogHandler
	ReviewHandler       *handler.ReviewHandler
	MessageHandler      *handler.MessageHandler
	NotificationHandler *handler.NotificationHandler
	DirectoryHandler    *handler.DirectoryHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler      *handler.ProfileHandler
	catalogHandler      *handler.CatalogHandler
	reviewHandler       *handler.ReviewHandler
	messageHandler      *handler.MessageHandler
	notificationHandler *handler.NotificationHandler
	directoryHandler    *handler.DirectoryHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:      params.ProfileHandler,
		catalogHandler:      params.CatalogHandler,
		reviewHandler:       params.ReviewHandler,
		messageHandler:      params.MessageHandler,
		notificationHandler: params.NotificationHandler,
		directoryHandler:    params.DirectoryHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	auth := r.authMiddleware
	identity := []echo.MiddlewareFunc{auth.Authenticate}
	profile := []echo.MiddlewareFunc{auth.Authenticate, auth.RequireProfile}
	own := []echo.MiddlewareFunc{auth.Authenticate, auth.RequireOwnProfile}
	provider := []echo.MiddlewareFunc{auth.Authenticate, auth.RequireProfile, auth.RequireProvider}

	api := e.Group("/api")

	// Public directory
	api.GET("/map", r.directoryHandler.ProviderMap)
	api.GET("/geocode", r.directoryHandler.Geocode)
	api.POST("/page-visits", r.adminHandler.RecordPageVisit)

	profiles := api.Group("/profiles")
	{
		profiles.GET("", r.directoryHandler.ListProviders)
		profiles.POST("", r.profileHandler.CreateProfile, identity...)
		profiles.POST("/check-username", r.profileHandler.CheckUsername)
		profiles.GET("/me", r.profileHandler.GetMe, own...)
		profiles.PUT("/me", r.profileHandler.UpdateMe, own...)
		profiles.PUT("/me/username", r.profileHandler.UpdateMyUsername, own...)
		profiles.DELETE("/me", r.profileHandler.DeleteMe, own...)
		profiles.GET("/:id", r.profileHandler.GetProfile)
		profiles.GET("/:id/qrcode", r.profileHandler.GetQRCode)
	}

	services := api.Group("/services")
	{
		services.GET("", r.catalogHandler.ListServices)
		services.POST("", r.catalogHandler.CreateService, provider...)
		services.DELETE("/:id", r.catalogHandler.DeleteService, profile...)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", r.reviewHandler.ListReviews)
		reviews.POST("", r.reviewHandler.CreateReview, profile...)
		reviews.DELETE("/:id", r.reviewHandler.DeleteReview, profile...)
		reviews.GET("/check/:providerId", r.reviewHandler.CheckReview, profile...)
	}

	messages := api.Group("/messages", profile...)
	{
		messages.GET("", r.messageHandler.ListMessages)
		messages.GET("/conversations", r.messageHandler.ListConversations)
		messages.POST("", r.messageHandler.SendMessage)
		messages.DELETE("/:id", r.messageHandler.DeleteMessage)
		messages.DELETE("/conversation/:otherUserId", r.messageHandler.DeleteConversation)
	}

	notifications := api.Group("/notifications", profile...)
	{
		notifications.GET("", r.notificationHandler.ListNotifications)
		notifications.GET("/unread-count", r.notificationHandler.UnreadCount)
		notifications.PUT("/:id/read", r.notificationHandler.MarkRead)
		notifications.DELETE("/:id", r.notificationHandler.DeleteNotification)
		notifications.DELETE("", r.notificationHandler.ClearNotifications)
	}

	admin := api.Group("/admin", auth.Authenticate, auth.RequireProfile, auth.RequireAdmin)
	{
		admin.GET("/stats", r.adminHandler.Stats)
		admin.GET("/page-visits", r.adminHandler.PageVisits)
		admin.GET("/profiles", r.adminHandler.ListProfiles)
		admin.POST("/profiles", r.adminHandler.CreateDemoProfile)
		admin.PUT("/profiles/:id", r.adminHandler.UpdateProfile)
		admin.DELETE("/profiles/:id", r.adminHandler.DeleteProfile)
		admin.GET("/profiles/:id/services", r.adminHandler.ListProfileServices)
		admin.POST("/profiles/:id/services", r.adminHandler.CreateProfileService)
		admin.PUT("/services/:id", r.adminHandler.UpdateService)
		admin.DELETE("/services/:id", r.adminHandler.DeleteService)
	}
}
