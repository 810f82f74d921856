// File: /services/event_service_test.go
package services

import (
	"testing"
	"time"

	"eventshub-api/models"
)

func newEventServiceForTest(t *testing.T) (*EventService, *MetadataService, *GoingService) {
	t.Helper()

	db := newTestDB(t)
	metadata := NewMetadataService(db)
	notifications := NewNotificationService(db)
	going := NewGoingService(db, notifications)
	cache := NewCacheService(5 * time.Minute)

	return NewEventService(nil, metadata, cache, going), metadata, going
}

func TestEnrichDefaults(t *testing.T) {
	svc, _, _ := newEventServiceForTest(t)

	feed := []models.CalendarEvent{
		{ID: "evt-1", Title: "Picnic"},
	}

	merged := svc.Enrich(feed)
	if len(merged) != 1 {
		t.Fatalf("expected 1 event, got %d", len(merged))
	}

	// No metadata row means explicit defaults, not dropped events.
	m := merged[0]
	if m.ID != "evt-1" || m.Title != "Picnic" {
		t.Errorf("feed fields not preserved: %+v", m)
	}
	if m.ChatURL != nil || m.PartifulLink != nil || m.InstaHandle != nil {
		t.Errorf("expected nil metadata fields, got %+v", m)
	}
	if m.Cancelled {
		t.Error("expected cancelled default false")
	}
}

func TestEnrichOverlaysMetadataAndKeepsOrder(t *testing.T) {
	svc, metadata, _ := newEventServiceForTest(t)

	if err := metadata.Set("evt-2", models.MetadataPatch{
		ChatURL:     strPtr("https://chat.example.com/2"),
		InstaHandle: strPtr("@host"),
	}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	feed := []models.CalendarEvent{
		{ID: "evt-1", Title: "First"},
		{ID: "evt-2", Title: "Second"},
		{ID: "evt-3", Title: "Third"},
	}

	merged := svc.Enrich(feed)
	if len(merged) != 3 {
		t.Fatalf("expected 3 events, got %d", len(merged))
	}
	for i, want := range []string{"evt-1", "evt-2", "evt-3"} {
		if merged[i].ID != want {
			t.Fatalf("order not preserved at %d: got %s, want %s", i, merged[i].ID, want)
		}
	}

	enriched := merged[1]
	if enriched.ChatURL == nil || *enriched.ChatURL != "https://chat.example.com/2" {
		t.Errorf("chat url not overlaid: %+v", enriched.ChatURL)
	}
	if enriched.OwnerInstagram == nil || *enriched.OwnerInstagram != "https://instagram.com/host" {
		t.Errorf("owner instagram not overlaid: %+v", enriched.OwnerInstagram)
	}
}

func TestAssembleUpcomingDropsCancelled(t *testing.T) {
	svc, metadata, _ := newEventServiceForTest(t)

	if err := metadata.Set("evt-gone", models.MetadataPatch{Cancelled: boolPtr(true)}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	feed := []models.CalendarEvent{
		{ID: "evt-keep", Title: "Keep"},
		{ID: "evt-gone", Title: "Gone"},
	}

	visible := svc.assembleUpcoming(feed)
	if len(visible) != 1 {
		t.Fatalf("expected 1 visible event, got %d", len(visible))
	}
	if visible[0].ID != "evt-keep" {
		t.Errorf("wrong event survived: %s", visible[0].ID)
	}
}

func TestCancelEventNotifiesAndClearsGoing(t *testing.T) {
	svc, metadata, going := newEventServiceForTest(t)

	for _, user := range []string{"user-1", "user-2"} {
		if _, err := going.Toggle("evt-1", user, "Someone"); err != nil {
			t.Fatalf("Toggle: %v", err)
		}
	}

	notified, err := svc.CancelEvent("evt-1", "Picnic")
	if err != nil {
		t.Fatalf("CancelEvent: %v", err)
	}
	if notified != 2 {
		t.Errorf("expected 2 notified, got %d", notified)
	}

	meta, err := metadata.Get("evt-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if meta == nil || !meta.Cancelled {
		t.Error("expected the event marked cancelled")
	}

	attendees, err := going.AttendeesFor("evt-1")
	if err != nil {
		t.Fatalf("AttendeesFor: %v", err)
	}
	if len(attendees) != 0 {
		t.Errorf("expected going records cleared, got %d", len(attendees))
	}
}

func TestCancelEventNoAttendees(t *testing.T) {
	svc, _, _ := newEventServiceForTest(t)

	notified, err := svc.CancelEvent("evt-quiet", "Quiet Event")
	if err != nil {
		t.Fatalf("CancelEvent: %v", err)
	}
	if notified != 0 {
		t.Errorf("expected 0 notified, got %d", notified)
	}
}
