// File: /services/notification_service_test.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"eventshub-api/models"
)

func TestNotifyAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)

	svc.Notify("user-1", models.NotificationTypeRequestApproved, "Approved", "Your request was approved", "req-1")
	svc.Notify("user-1", models.NotificationTypeEventCancelled, "Cancelled", "An event was cancelled", "evt-1")
	svc.Notify("user-2", models.NotificationTypeRequestRejected, "Rejected", "Nope", "req-2")

	list, err := svc.ListForUser("user-1")
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 notifications for user-1, got %d", len(list))
	}
	for _, n := range list {
		if n.UserID != "user-1" {
			t.Errorf("leaked notification for %s", n.UserID)
		}
		if n.Read {
			t.Error("new notifications must start unread")
		}
	}
}

func TestListCap(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)

	for i := 0; i < notificationListLimit+10; i++ {
		svc.Notify("user-1", models.NotificationTypeRequestApproved, "T", fmt.Sprintf("message %d", i), "")
	}

	list, err := svc.ListForUser("user-1")
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list) != notificationListLimit {
		t.Fatalf("expected list capped at %d, got %d", notificationListLimit, len(list))
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)

	svc.Notify("user-1", models.NotificationTypeRequestApproved, "T", "m", "")

	list, err := svc.ListForUser("user-1")
	if err != nil || len(list) != 1 {
		t.Fatalf("ListForUser: %v (%d)", err, len(list))
	}
	id := list[0].ID

	if err := svc.MarkRead(id, "user-1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	var first models.Notification
	db.First(&first, "id = ?", id)
	if !first.Read || first.ReadAt == nil {
		t.Fatal("expected read flag and timestamp set")
	}

	// A repeat keeps the original timestamp.
	if err := svc.MarkRead(id, "user-1"); err != nil {
		t.Fatalf("repeat MarkRead: %v", err)
	}
	var second models.Notification
	db.First(&second, "id = ?", id)
	if !second.ReadAt.Equal(*first.ReadAt) {
		t.Errorf("ReadAt changed on repeat: %s vs %s", second.ReadAt, first.ReadAt)
	}
}

func TestMarkReadMissing(t *testing.T) {
	svc := NewNotificationService(newTestDB(t))

	if err := svc.MarkRead("missing", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkReadScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)

	svc.Notify("user-1", models.NotificationTypeRequestApproved, "T", "m", "")

	list, err := svc.ListForUser("user-1")
	if err != nil || len(list) != 1 {
		t.Fatalf("ListForUser: %v (%d)", err, len(list))
	}
	id := list[0].ID

	// A different user holding the id cannot mark it read.
	if err := svc.MarkRead(id, "user-2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign user, got %v", err)
	}

	var notification models.Notification
	db.First(&notification, "id = ?", id)
	if notification.Read {
		t.Error("notification must stay unread after a foreign mark attempt")
	}

	if err := svc.MarkRead(id, "user-1"); err != nil {
		t.Fatalf("owner MarkRead: %v", err)
	}
}

func TestUnreadCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)

	svc.Notify("user-1", models.NotificationTypeRequestApproved, "A", "m", "")
	svc.Notify("user-1", models.NotificationTypeRequestRejected, "B", "m", "")

	count, err := svc.UnreadCount("user-1")
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread, got %d", count)
	}

	list, _ := svc.ListForUser("user-1")
	if err := svc.MarkRead(list[0].ID, "user-1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	count, _ = svc.UnreadCount("user-1")
	if count != 1 {
		t.Fatalf("expected 1 unread after MarkRead, got %d", count)
	}
}

func TestUnreadCountColumnName(t *testing.T) {
	db := newTestDB(t)

	// The read flag's column must be is_read: a bare `read` identifier is a
	// reserved word under MySQL and the count queries would not parse there.
	dry := db.Session(&gorm.Session{DryRun: true})

	var count int64
	stmt := dry.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", "user-1", false).
		Count(&count).Statement
	if !strings.Contains(stmt.SQL.String(), "is_read") {
		t.Fatalf("user count query should filter on is_read: %s", stmt.SQL.String())
	}

	stmt = dry.Model(&models.AdminNotification{}).
		Where("is_read = ?", false).
		Count(&count).Statement
	if !strings.Contains(stmt.SQL.String(), "is_read") {
		t.Fatalf("admin count query should filter on is_read: %s", stmt.SQL.String())
	}

	field := stmt.Schema.LookUpField("Read")
	if field == nil || field.DBName != "is_read" {
		t.Fatal("Read field should map to the is_read column")
	}
}

func TestAdminNotifications(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)

	svc.NotifyAdmin(models.NotificationTypeEventRequest, "New Request", "m", "req-1", "u@example.com")
	svc.NotifyAdmin(models.NotificationTypeEventEdit, "New Edit", "m", "edit-1", "v@example.com")

	list, err := svc.ListAdmin()
	if err != nil {
		t.Fatalf("ListAdmin: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 admin notifications, got %d", len(list))
	}

	count, err := svc.AdminUnreadCount()
	if err != nil {
		t.Fatalf("AdminUnreadCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread, got %d", count)
	}

	if err := svc.MarkAdminRead(list[0].ID); err != nil {
		t.Fatalf("MarkAdminRead: %v", err)
	}
	count, _ = svc.AdminUnreadCount()
	if count != 1 {
		t.Fatalf("expected 1 unread after MarkAdminRead, got %d", count)
	}

	if err := svc.MarkAdminRead("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
