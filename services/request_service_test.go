// File: /services/request_service_test.go
package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"eventshub-api/models"
)

func newRequestServiceForTest(t *testing.T) (*RequestService, *gorm.DB, *fakeMailer) {
	t.Helper()

	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewRequestService(db, NewNotificationService(db), mailer)
	return svc, db, mailer
}

func validInput(title string) SubmitRequestInput {
	return SubmitRequestInput{
		Title:     title,
		EventDate: time.Date(2030, 7, 4, 0, 0, 0, 0, time.UTC),
		EventTime: "7pm",
		Location:  "Warehouse",
	}
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	svc, db, mailer := newRequestServiceForTest(t)

	id, err := svc.Submit(validInput("Block Party"), "user-1", "user@example.com")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if id == "" {
		t.Fatal("expected a request id")
	}

	var request models.EventRequest
	if err := db.First(&request, "id = ?", id).Error; err != nil {
		t.Fatalf("loading request: %v", err)
	}
	if request.Status != models.RequestStatusPending {
		t.Errorf("expected pending, got %s", request.Status)
	}
	if request.UserID != "user-1" || request.UserEmail != "user@example.com" {
		t.Errorf("submitter not recorded: %+v", request)
	}

	// Admin queue and email fan out on submission.
	var adminCount int64
	db.Model(&models.AdminNotification{}).Count(&adminCount)
	if adminCount != 1 {
		t.Errorf("expected 1 admin notification, got %d", adminCount)
	}
	if mailer.eventRequestCount() != 1 {
		t.Errorf("expected 1 email, got %d", mailer.eventRequestCount())
	}
}

func TestSubmitValidation(t *testing.T) {
	svc, _, _ := newRequestServiceForTest(t)

	_, err := svc.Submit(SubmitRequestInput{Title: "  ", EventDate: time.Now()}, "user-1", "u@example.com")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for blank title, got %v", err)
	}

	_, err = svc.Submit(SubmitRequestInput{Title: "Party"}, "user-1", "u@example.com")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for zero date, got %v", err)
	}

	bad := validInput("Party")
	bad.FlyerURL = strPtr("javascript:alert(1)")
	_, err = svc.Submit(bad, "user-1", "u@example.com")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for bad flyer url, got %v", err)
	}
}

func TestSubmitDailyLimit(t *testing.T) {
	svc, _, _ := newRequestServiceForTest(t)

	base := time.Date(2030, 3, 10, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return base }

	for i := 0; i < MaxRequestsPerDay; i++ {
		if _, err := svc.Submit(validInput("Party"), "user-1", "u@example.com"); err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
	}

	_, err := svc.Submit(validInput("One Too Many"), "user-1", "u@example.com")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited on request %d, got %v", MaxRequestsPerDay+1, err)
	}

	// Another user is unaffected.
	if _, err := svc.Submit(validInput("Other User"), "user-2", "v@example.com"); err != nil {
		t.Fatalf("other user blocked: %v", err)
	}

	// The window resets at local midnight.
	svc.now = func() time.Time {
		return time.Date(2030, 3, 11, 0, 0, 1, 0, time.Local)
	}
	if _, err := svc.Submit(validInput("Next Day"), "user-1", "u@example.com"); err != nil {
		t.Fatalf("next-day submit blocked: %v", err)
	}
}

func TestDecideApprove(t *testing.T) {
	svc, db, _ := newRequestServiceForTest(t)

	id, err := svc.Submit(validInput("Party"), "user-1", "u@example.com")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := svc.Decide(id, models.RequestStatusApproved, "looks good", true); err != nil {
		t.Fatalf("Decide: %v", err)
	}

	var request models.EventRequest
	db.First(&request, "id = ?", id)
	if request.Status != models.RequestStatusApproved {
		t.Errorf("expected approved, got %s", request.Status)
	}
	if request.ReviewedAt == nil {
		t.Error("expected reviewed_at stamped")
	}

	var notification models.Notification
	if err := db.Where("user_id = ?", "user-1").First(&notification).Error; err != nil {
		t.Fatalf("expected submitter notification: %v", err)
	}
	if notification.Type != models.NotificationTypeRequestApproved {
		t.Errorf("wrong notification type %s", notification.Type)
	}
}

func TestDecideRejectRequiresNotes(t *testing.T) {
	svc, _, _ := newRequestServiceForTest(t)

	id, err := svc.Submit(validInput("Party"), "user-1", "u@example.com")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	err = svc.Decide(id, models.RequestStatusRejected, "   ", true)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for blank notes, got %v", err)
	}

	if err := svc.Decide(id, models.RequestStatusRejected, "duplicate event", true); err != nil {
		t.Fatalf("Decide with notes: %v", err)
	}
}

func TestDecideGuards(t *testing.T) {
	svc, _, _ := newRequestServiceForTest(t)

	id, err := svc.Submit(validInput("Party"), "user-1", "u@example.com")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := svc.Decide(id, models.RequestStatusApproved, "", false); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for non-admin, got %v", err)
	}
	if err := svc.Decide(id, models.RequestStatus("pending"), "", true); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for bad status, got %v", err)
	}
	if err := svc.Decide("missing", models.RequestStatusApproved, "", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Terminal states are final.
	if err := svc.Decide(id, models.RequestStatusApproved, "", true); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if err := svc.Decide(id, models.RequestStatusRejected, "changed my mind", true); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState on re-decide, got %v", err)
	}
}

func TestDeleteOwnApprovedRequest(t *testing.T) {
	svc, _, _ := newRequestServiceForTest(t)

	id, err := svc.Submit(validInput("Party"), "user-1", "u@example.com")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Pending requests cannot be deleted.
	if err := svc.Delete(id, "user-1"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState for pending delete, got %v", err)
	}

	if err := svc.Decide(id, models.RequestStatusApproved, "", true); err != nil {
		t.Fatalf("Decide: %v", err)
	}

	if err := svc.Delete(id, "someone-else"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for non-owner, got %v", err)
	}

	if err := svc.Delete(id, "user-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(id, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPendingAndForUserOrdering(t *testing.T) {
	svc, _, _ := newRequestServiceForTest(t)

	base := time.Date(2030, 3, 10, 9, 0, 0, 0, time.Local)
	for i, title := range []string{"First", "Second", "Third"} {
		offset := time.Duration(i) * time.Hour
		svc.now = func() time.Time { return base.Add(offset) }
		if _, err := svc.Submit(validInput(title), "user-1", "u@example.com"); err != nil {
			t.Fatalf("Submit %s: %v", title, err)
		}
	}

	pending, err := svc.Pending()
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 3 || pending[0].Title != "First" {
		t.Errorf("expected oldest first, got %+v", pending)
	}

	mine, err := svc.ForUser("user-1")
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(mine) != 3 || mine[0].Title != "Third" {
		t.Errorf("expected newest first, got %+v", mine)
	}
}
