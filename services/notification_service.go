// File: /services/notification_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventshub-api/models"
)

const notificationListLimit = 50

// NotificationService creates, lists and marks-read notifications for users
// and admins. Creation is fire-and-forget with a no-throw contract: a failed
// insert is logged and swallowed so the workflow transition that triggered it
// never fails or rolls back. Notifications are append-only; only the read
// flag ever changes.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Notify creates a user-scoped notification. Errors are logged, never
// returned.
func (s *NotificationService) Notify(userID string, typ models.NotificationType, title, message, relatedID string) {
	notification := models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
	}

	if err := s.db.Create(&notification).Error; err != nil {
		log.Printf("notifications: failed to create %s notification for user %s: %v", typ, userID, err)
	}
}

// NotifyAdmin creates a global admin notification. fromEmail records which
// user triggered it. Errors are logged, never returned.
func (s *NotificationService) NotifyAdmin(typ models.NotificationType, title, message, relatedID, fromEmail string) {
	notification := models.AdminNotification{
		ID:        uuid.New().String(),
		Type:      typ,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
		UserEmail: fromEmail,
	}

	if err := s.db.Create(&notification).Error; err != nil {
		log.Printf("notifications: failed to create admin %s notification: %v", typ, err)
	}
}

// ListForUser returns the user's notifications, newest first, capped at 50.
func (s *NotificationService) ListForUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(notificationListLimit).
		Find(&notifications).Error
	return notifications, err
}

// ListAdmin returns admin notifications, newest first, capped at 50.
func (s *NotificationService) ListAdmin() ([]models.AdminNotification, error) {
	var notifications []models.AdminNotification
	err := s.db.Order("created_at DESC").
		Limit(notificationListLimit).
		Find(&notifications).Error
	return notifications, err
}

// MarkRead sets the read flag and stamps ReadAt. The lookup is scoped to the
// owning user, so a foreign id reads as not found. Repeated calls are
// idempotent: an already-read notification keeps its original ReadAt.
func (s *NotificationService) MarkRead(notificationID, userID string) error {
	var notification models.Notification
	err := s.db.First(&notification, "id = ? AND user_id = ?", notificationID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: notification %s", ErrNotFound, notificationID)
		}
		return err
	}

	if notification.Read {
		return nil
	}

	now := time.Now()
	return s.db.Model(&notification).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": now,
	}).Error
}

// MarkAdminRead is MarkRead for the admin scope.
func (s *NotificationService) MarkAdminRead(notificationID string) error {
	var notification models.AdminNotification
	if err := s.db.First(&notification, "id = ?", notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: admin notification %s", ErrNotFound, notificationID)
		}
		return err
	}

	if notification.Read {
		return nil
	}

	now := time.Now()
	return s.db.Model(&notification).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": now,
	}).Error
}

// UnreadCount returns the user's unread notification count for UI badges.
func (s *NotificationService) UnreadCount(userID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// AdminUnreadCount returns the unread admin notification count.
func (s *NotificationService) AdminUnreadCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.AdminNotification{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}
