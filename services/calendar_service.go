// File: /services/calendar_service.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"time"

	ical "github.com/arran4/golang-ical"

	"eventshub-api/config"
	"eventshub-api/models"
)

// CalendarService fetches and parses the external calendar feed. The feed is
// read-only from this system's perspective: every fetch regenerates the full
// event list. Failures never propagate to callers; they degrade to an empty
// result and the caller decides how to signal staleness.
type CalendarService struct {
	client        *http.Client
	icsURL        string
	proxies       []string
	calendarEmail string
}

func NewCalendarService(cfg *config.Config) *CalendarService {
	return &CalendarService{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		icsURL:        cfg.CalendarICSURL,
		proxies:       cfg.CORSProxies,
		calendarEmail: cfg.CalendarEmail,
	}
}

// FetchEvents retrieves the feed, parses it, drops events that already ended
// and returns the rest sorted ascending by start time. Any network or parse
// failure is logged and surfaces as an empty slice.
func (s *CalendarService) FetchEvents(ctx context.Context) []models.CalendarEvent {
	body, err := s.fetchICS(ctx)
	if err != nil {
		log.Printf("calendar: fetch failed: %v", err)
		return []models.CalendarEvent{}
	}

	events, err := ParseCalendarData(body)
	if err != nil {
		log.Printf("calendar: parse failed: %v", err)
		return []models.CalendarEvent{}
	}

	return FilterUpcoming(events, time.Now())
}

// AddToCalendarURL returns the public link users follow to subscribe to the
// upstream calendar in their own client.
func (s *CalendarService) AddToCalendarURL() string {
	return "https://calendar.google.com/calendar/render?cid=" + url.QueryEscape(s.icsURL)
}

// fetchICS tries each configured forwarding proxy in priority order and stops
// at the first success. With no proxies configured the feed is fetched
// directly.
func (s *CalendarService) fetchICS(ctx context.Context) ([]byte, error) {
	candidates := []string{s.icsURL}
	if len(s.proxies) > 0 {
		candidates = make([]string, 0, len(s.proxies))
		for _, proxy := range s.proxies {
			candidates = append(candidates, proxy+url.QueryEscape(s.icsURL))
		}
	}

	var lastErr error
	for _, target := range candidates {
		body, err := s.fetchOne(ctx, target)
		if err == nil {
			return body, nil
		}
		lastErr = err
	}

	if lastErr == nil {
		lastErr = errors.New("no feed source configured")
	}
	return nil, lastErr
}

func (s *CalendarService) fetchOne(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/calendar")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// ParseCalendarData parses an ICS payload into calendar events. Events
// without a UID are skipped; an untitled event gets a placeholder title so
// downstream views never render an empty heading.
func ParseCalendarData(body []byte) ([]models.CalendarEvent, error) {
	if len(body) == 0 {
		return nil, errors.New("empty calendar body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	events := make([]models.CalendarEvent, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
		if uidProp == nil || uidProp.Value == "" {
			continue
		}

		event := models.CalendarEvent{
			ID:    uidProp.Value,
			Title: "Untitled Event",
		}
		if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil && p.Value != "" {
			event.Title = p.Value
		}
		if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
			event.Description = p.Value
		}
		if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
			event.Location = p.Value
		}

		start, err := ve.GetStartAt()
		if err != nil {
			log.Printf("calendar: skipping event %s without start time: %v", event.ID, err)
			continue
		}
		event.Start = start

		end, err := ve.GetEndAt()
		if err != nil {
			// Feeds are not guaranteed to carry DTEND; treat as instantaneous.
			end = start
		}
		event.End = end

		events = append(events, event)
	}

	return events, nil
}

// FilterUpcoming drops events that ended before now and sorts the remainder
// ascending by start time.
func FilterUpcoming(events []models.CalendarEvent, now time.Time) []models.CalendarEvent {
	upcoming := make([]models.CalendarEvent, 0, len(events))
	for _, event := range events {
		if !event.End.Before(now) {
			upcoming = append(upcoming, event)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Start.Before(upcoming[j].Start)
	})

	return upcoming
}
