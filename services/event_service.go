// File: /services/event_service.go
package services

import (
	"context"
	"fmt"
	"log"

	"eventshub-api/models"
)

// EventService reconciles the two independently owned data sources, the
// external calendar feed and the metadata store, into the single merged
// event view the API exposes, and owns event cancellation.
type EventService struct {
	calendar *CalendarService
	metadata *MetadataService
	cache    *CacheService
	going    *GoingService
}

func NewEventService(calendar *CalendarService, metadata *MetadataService, cache *CacheService, going *GoingService) *EventService {
	return &EventService{
		calendar: calendar,
		metadata: metadata,
		cache:    cache,
		going:    going,
	}
}

// Enrich flattens stored metadata onto each calendar event. The metadata map
// is read once (one round trip regardless of event count), input order is
// preserved, and events without a metadata record get explicit defaults. A
// failed metadata read degrades to the feed fields unchanged: metadata is
// enrichment, not a dependency.
func (s *EventService) Enrich(events []models.CalendarEvent) []models.MergedEvent {
	metadata, err := s.metadata.GetAll()
	if err != nil {
		log.Printf("events: metadata read failed, serving feed only: %v", err)
		metadata = nil
	}

	merged := make([]models.MergedEvent, 0, len(events))
	for _, event := range events {
		m := models.MergedEvent{CalendarEvent: event}
		if meta, ok := metadata[event.ID]; ok {
			m.ChatURL = meta.ChatURL
			m.PartifulLink = meta.PartifulLink
			m.InstaHandle = meta.InstaHandle
			m.EventOwner = meta.EventOwner
			m.OwnerInstagram = meta.OwnerInstagram
			m.FlyerURL = meta.FlyerURL
			m.Cancelled = meta.Cancelled
		}
		merged = append(merged, m)
	}
	return merged
}

// UpcomingEvents serves the merged upcoming-event list, preferring the cache.
// A miss falls through to a full fetch+enrich cycle. Background freshness is
// the refresh job's responsibility, so a cache hit never blocks on the feed.
func (s *EventService) UpcomingEvents(ctx context.Context) []models.MergedEvent {
	if events, ok := s.cache.Get(); ok {
		return events
	}
	return s.RefreshEvents(ctx)
}

// RefreshEvents bypasses the cache read, rebuilds the merged list from the
// feed and overwrites the cache slot.
func (s *EventService) RefreshEvents(ctx context.Context) []models.MergedEvent {
	events := s.calendar.FetchEvents(ctx)
	merged := s.assembleUpcoming(events)
	s.cache.Put(merged)
	return merged
}

// assembleUpcoming enriches feed events and drops cancelled ones. A cancelled
// event never appears in an upcoming listing regardless of its date.
func (s *EventService) assembleUpcoming(events []models.CalendarEvent) []models.MergedEvent {
	merged := s.Enrich(events)
	visible := make([]models.MergedEvent, 0, len(merged))
	for _, event := range merged {
		if event.Cancelled {
			continue
		}
		visible = append(visible, event)
	}
	return visible
}

// InvalidateCache drops the cached merged list so the next read rebuilds it.
func (s *EventService) InvalidateCache() {
	s.cache.Clear()
}

// CancelEvent flags the event as cancelled in the metadata store, notifies
// every attendee and clears their going records. Returns the number of
// attendees notified; zero is a normal outcome.
func (s *EventService) CancelEvent(eventID, eventTitle string) (int, error) {
	if eventID == "" {
		return 0, fmt.Errorf("%w: event id is required", ErrValidation)
	}

	cancelled := true
	if err := s.metadata.Set(eventID, models.MetadataPatch{Cancelled: &cancelled}); err != nil {
		return 0, err
	}

	notified, err := s.going.NotifyCancelled(eventID, eventTitle)
	if err != nil {
		return 0, err
	}

	// Drop the cached list so the event disappears on the next read instead
	// of lingering until the TTL runs out.
	s.cache.Clear()

	return notified, nil
}
