// File: /services/export_service.go
package services

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"eventshub-api/models"
)

// ExportService turns a finalized merged event list into a shareable ICS
// document. Callers hand it the already filtered and sorted list; the only
// shaping done here is the optional date-range cut.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildICS serializes the events into an iCalendar document. When from or to
// is non-nil, only events starting within [from, to) are included.
func (s *ExportService) BuildICS(events []models.MergedEvent, from, to *time.Time) []byte {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	now := time.Now()
	for _, event := range events {
		if from != nil && event.Start.Before(*from) {
			continue
		}
		if to != nil && !event.Start.Before(*to) {
			continue
		}

		ve := cal.AddEvent(event.ID)
		ve.SetDtStampTime(now)
		ve.SetStartAt(event.Start)
		ve.SetEndAt(event.End)
		ve.SetSummary(event.Title)
		if event.Description != "" {
			ve.SetDescription(event.Description)
		}
		if event.Location != "" {
			ve.SetLocation(event.Location)
		}
		// Prefer the RSVP link, fall back to the group chat.
		if event.PartifulLink != nil && *event.PartifulLink != "" {
			ve.SetURL(*event.PartifulLink)
		} else if event.ChatURL != nil && *event.ChatURL != "" {
			ve.SetURL(*event.ChatURL)
		}
	}

	return []byte(cal.Serialize())
}
