// File: /main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"eventshub-api/config"
	"eventshub-api/controllers"
	"eventshub-api/database"
	"eventshub-api/jobs"
	"eventshub-api/routes"
	"eventshub-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize services
	calendarService := services.NewCalendarService(cfg)
	cacheService := services.NewCacheService(cfg.CacheTTL)
	metadataService := services.NewMetadataService(db)
	notificationService := services.NewNotificationService(db)
	goingService := services.NewGoingService(db, notificationService)
	eventService := services.NewEventService(calendarService, metadataService, cacheService, goingService)
	emailService := services.NewEmailService(cfg)
	requestService := services.NewRequestService(db, notificationService, emailService)
	editService := services.NewEditService(db, metadataService, notificationService, emailService)
	exportService := services.NewExportService()

	// Start the background feed refresh
	refreshJob := jobs.NewFeedRefreshJob(eventService, cfg.RefreshInterval)
	if err := refreshJob.Start(); err != nil {
		log.Fatal("Failed to start feed refresh job:", err)
	}
	defer refreshJob.Stop()

	// Setup router
	router := gin.Default()

	routes.SetupRoutes(router, routes.Controllers{
		Auth:          controllers.NewAuthController(db, cfg.JWTSecret, cfg.AdminEmail),
		Events:        controllers.NewEventController(eventService, calendarService, exportService, metadataService),
		Requests:      controllers.NewRequestController(requestService),
		Edits:         controllers.NewEditController(editService, eventService),
		Going:         controllers.NewGoingController(goingService),
		Notifications: controllers.NewNotificationController(notificationService),
	}, cfg.JWTSecret)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
