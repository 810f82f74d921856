// File: /services/cache_service.go
package services

import (
	"sync"
	"time"

	"eventshub-api/models"
)

// CacheService is a single-slot, time-boxed cache of the merged event list.
// There is exactly one slot: Put always overwrites, last write wins. An entry
// older than the TTL is treated as absent and evicted on read, never
// partially trusted.
type CacheService struct {
	mu        sync.Mutex
	events    []models.MergedEvent
	timestamp time.Time
	hasEntry  bool

	ttl time.Duration
	now func() time.Time
}

func NewCacheService(ttl time.Duration) *CacheService {
	return &CacheService{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached events and true while the entry is fresh. An
// expired entry is evicted immediately so a subsequent Get also misses.
func (s *CacheService) Get() ([]models.MergedEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasEntry {
		return nil, false
	}

	if s.now().Sub(s.timestamp) >= s.ttl {
		s.events = nil
		s.hasEntry = false
		return nil, false
	}

	events := make([]models.MergedEvent, len(s.events))
	copy(events, s.events)
	return events, true
}

// Put overwrites the slot with a fresh entry.
func (s *CacheService) Put(events []models.MergedEvent) {
	stored := make([]models.MergedEvent, len(events))
	copy(stored, events)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = stored
	s.timestamp = s.now()
	s.hasEntry = true
}

// Clear empties the slot.
func (s *CacheService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = nil
	s.hasEntry = false
}
