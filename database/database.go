// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventshub-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.EventMetadata{},
		&models.EventRequest{},
		&models.EventEdit{},
		&models.GoingRecord{},
		&models.Notification{},
		&models.AdminNotification{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Add custom indexes for better query performance
	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Daily-limit counting scans (user_id, created_at) windows
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_event_requests_user_created ON event_requests(user_id, created_at)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for event_requests: %v\n", err)
	}

	// Moderation queues filter on status then order by created_at
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_event_edits_status_created ON event_edits(status, created_at)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for event_edits: %v\n", err)
	}

	// Bulk going counts and per-user membership lookups
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_event_going_user ON event_going(user_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for event_going: %v\n", err)
	}

	return nil
}
