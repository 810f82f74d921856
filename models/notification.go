// File: /models/notification.go
package models

import (
	"time"
)

type NotificationType string

// The type strings are part of the dispatcher contract: the UI layer branches
// on them for icons and navigation.
const (
	NotificationTypeEventRequest    NotificationType = "event_request"
	NotificationTypeEventEdit       NotificationType = "event_edit"
	NotificationTypeRequestApproved NotificationType = "request_approved"
	NotificationTypeRequestRejected NotificationType = "request_rejected"
	NotificationTypeEditApproved    NotificationType = "edit_approved"
	NotificationTypeEditRejected    NotificationType = "edit_rejected"
	NotificationTypeEventCancelled  NotificationType = "event_cancelled"
)

// Notification is a user-scoped, append-only notification. Rows are never
// deleted; the read flag is the only mutable state.
type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey;size:191"`
	UserID    string           `json:"user_id" gorm:"not null;size:191;index:idx_notifications_user_read"`
	Type      NotificationType `json:"type" gorm:"not null;size:50"`
	Title     string           `json:"title" gorm:"not null;size:255"`
	Message   string           `json:"message" gorm:"type:text"`
	RelatedID string           `json:"related_id" gorm:"size:191"` // request, edit or event id
	// Column is is_read: READ is a reserved word in MySQL.
	Read      bool             `json:"read" gorm:"column:is_read;default:false;index:idx_notifications_user_read"`
	CreatedAt time.Time        `json:"created_at" gorm:"index"`
	ReadAt    *time.Time       `json:"read_at"`
}

// AdminNotification is the global (admin-scoped) counterpart, feeding the
// moderation queue badge. UserEmail records who triggered it.
type AdminNotification struct {
	ID        string           `json:"id" gorm:"primaryKey;size:191"`
	Type      NotificationType `json:"type" gorm:"not null;size:50"`
	Title     string           `json:"title" gorm:"not null;size:255"`
	Message   string           `json:"message" gorm:"type:text"`
	RelatedID string           `json:"related_id" gorm:"size:191"`
	UserEmail string           `json:"user_email" gorm:"size:255"`
	Read      bool             `json:"read" gorm:"column:is_read;default:false;index"`
	CreatedAt time.Time        `json:"created_at" gorm:"index"`
	ReadAt    *time.Time       `json:"read_at"`
}
