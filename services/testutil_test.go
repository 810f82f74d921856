// File: /services/testutil_test.go
package services

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventshub-api/models"
)

// newTestDB opens a fresh in-memory database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.EventMetadata{},
		&models.EventRequest{},
		&models.EventEdit{},
		&models.GoingRecord{},
		&models.Notification{},
		&models.AdminNotification{},
	)
	if err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}

// fakeMailer records sends instead of dialing SMTP.
type fakeMailer struct {
	mu            sync.Mutex
	eventRequests []models.EventRequest
	editRequests  []string
}

func (m *fakeMailer) SendEventRequestEmail(request models.EventRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventRequests = append(m.eventRequests, request)
}

func (m *fakeMailer) SendEditRequestEmail(userEmail, eventTitle, editID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.editRequests = append(m.editRequests, editID)
}

func (m *fakeMailer) eventRequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.eventRequests)
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
