// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"eventshub-api/controllers"
	"eventshub-api/middleware"
)

// Controllers bundles every handler group the router wires up.
type Controllers struct {
	Auth          *controllers.AuthController
	Events        *controllers.EventController
	Requests      *controllers.RequestController
	Edits         *controllers.EditController
	Going         *controllers.GoingController
	Notifications *controllers.NotificationController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers, jwtSecret string) {
	// Global middleware
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(100, 20))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", ctrl.Auth.Register)
			auth.POST("/login", ctrl.Auth.Login)
		}

		events := api.Group("/events")
		{
			events.GET("", ctrl.Events.List)
			events.GET("/export", ctrl.Events.Export)
			events.GET("/subscribe-url", ctrl.Events.SubscribeURL)
			events.POST("/counts", ctrl.Going.Counts)
		}

		// Authenticated routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			protected.GET("/auth/me", ctrl.Auth.Me)

			protected.POST("/events/:id/going", ctrl.Going.Toggle)
			protected.POST("/events/going-status", ctrl.Going.Status)
			protected.POST("/events/:id/edits", ctrl.Edits.Submit)

			protected.POST("/requests", ctrl.Requests.Submit)
			protected.GET("/requests/mine", ctrl.Requests.Mine)
			protected.DELETE("/requests/:id", ctrl.Requests.Delete)

			protected.GET("/edits/mine", ctrl.Edits.Mine)

			protected.GET("/notifications", ctrl.Notifications.List)
			protected.GET("/notifications/unread-count", ctrl.Notifications.UnreadCount)
			protected.PUT("/notifications/:id/read", ctrl.Notifications.MarkRead)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(jwtSecret))
		admin.Use(middleware.AdminRequired())
		{
			admin.POST("/events/refresh", ctrl.Events.Refresh)
			admin.PUT("/events/:id/metadata", ctrl.Events.SetMetadata)
			admin.POST("/events/:id/cancel", ctrl.Events.Cancel)
			admin.GET("/events/:id/attendees", ctrl.Going.Attendees)

			admin.GET("/requests", ctrl.Requests.Pending)
			admin.PUT("/requests/:id/decision", ctrl.Requests.Decide)

			admin.GET("/edits", ctrl.Edits.Pending)
			admin.PUT("/edits/:id/decision", ctrl.Edits.Decide)

			admin.GET("/notifications", ctrl.Notifications.ListAdmin)
			admin.GET("/notifications/unread-count", ctrl.Notifications.AdminUnreadCount)
			admin.PUT("/notifications/:id/read", ctrl.Notifications.MarkAdminRead)
		}
	}
}
