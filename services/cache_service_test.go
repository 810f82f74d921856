// File: /services/cache_service_test.go
package services

import (
	"testing"
	"time"

	"eventshub-api/models"
)

func TestCacheServePutGet(t *testing.T) {
	cache := NewCacheService(5 * time.Minute)

	if _, ok := cache.Get(); ok {
		t.Fatal("empty cache should miss")
	}

	events := []models.MergedEvent{
		{CalendarEvent: models.CalendarEvent{ID: "evt-1", Title: "First"}},
	}
	cache.Put(events)

	got, ok := cache.Get()
	if !ok {
		t.Fatal("expected a hit right after Put")
	}
	if len(got) != 1 || got[0].ID != "evt-1" {
		t.Fatalf("unexpected cached events: %+v", got)
	}

	// Mutating the returned slice must not affect the stored copy.
	got[0].Title = "mutated"
	again, _ := cache.Get()
	if again[0].Title != "First" {
		t.Error("cache returned a shared slice")
	}
}

func TestCacheTTLBoundary(t *testing.T) {
	base := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	current := base

	cache := NewCacheService(5 * time.Minute)
	cache.now = func() time.Time { return current }

	cache.Put([]models.MergedEvent{{CalendarEvent: models.CalendarEvent{ID: "evt-1"}}})

	current = base.Add(4*time.Minute + 59*time.Second)
	if _, ok := cache.Get(); !ok {
		t.Error("entry should still be fresh just under the TTL")
	}

	current = base.Add(5 * time.Minute)
	if _, ok := cache.Get(); ok {
		t.Error("entry at exactly the TTL should be expired")
	}

	// Expiry evicts: going back in time does not resurrect the entry.
	current = base
	if _, ok := cache.Get(); ok {
		t.Error("expired entry should have been evicted permanently")
	}
}

func TestCacheLastWriteWins(t *testing.T) {
	cache := NewCacheService(time.Minute)

	cache.Put([]models.MergedEvent{{CalendarEvent: models.CalendarEvent{ID: "old"}}})
	cache.Put([]models.MergedEvent{{CalendarEvent: models.CalendarEvent{ID: "new"}}})

	got, ok := cache.Get()
	if !ok || len(got) != 1 || got[0].ID != "new" {
		t.Fatalf("expected the second write to win, got %+v", got)
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCacheService(time.Minute)
	cache.Put([]models.MergedEvent{{CalendarEvent: models.CalendarEvent{ID: "evt-1"}}})

	cache.Clear()
	if _, ok := cache.Get(); ok {
		t.Fatal("cleared cache should miss")
	}
}
