// File: /controllers/event_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eventshub-api/models"
	"eventshub-api/services"
	"eventshub-api/utils"
)

type EventController struct {
	events   *services.EventService
	calendar *services.CalendarService
	export   *services.ExportService
	metadata *services.MetadataService
}

func NewEventController(events *services.EventService, calendar *services.CalendarService, export *services.ExportService, metadata *services.MetadataService) *EventController {
	return &EventController{
		events:   events,
		calendar: calendar,
		export:   export,
		metadata: metadata,
	}
}

// List returns the upcoming merged events, served from cache when fresh.
func (ec *EventController) List(c *gin.Context) {
	events := ec.events.UpcomingEvents(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// Refresh forces a feed re-fetch, bypassing the cache.
func (ec *EventController) Refresh(c *gin.Context) {
	events := ec.events.RefreshEvents(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// SubscribeURL returns the Google Calendar subscription link for the feed.
func (ec *EventController) SubscribeURL(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"url": ec.calendar.AddToCalendarURL()})
}

// Export serves the upcoming events as an ICS file, optionally bounded
// by ?from=2025-01-02&to=2025-02-01 (inclusive dates).
func (ec *EventController) Export(c *gin.Context) {
	events := ec.events.UpcomingEvents(c.Request.Context())

	from, ok := parseDateParam(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "to")
	if !ok {
		return
	}
	if to != nil {
		// Make the upper bound inclusive of the whole day.
		end := to.AddDate(0, 0, 1)
		to = &end
	}

	data := ec.export.BuildICS(events, from, to)

	c.Header("Content-Disposition", `attachment; filename="events.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

// SetMetadata merges a metadata patch directly onto an event (admin only).
func (ec *EventController) SetMetadata(c *gin.Context) {
	eventID := c.Param("id")

	var patch models.MetadataPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ec.metadata.Set(eventID, patch); err != nil {
		handleServiceError(c, err)
		return
	}
	ec.events.InvalidateCache()

	meta, err := ec.metadata.Get(eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load metadata"})
		return
	}

	utils.SendSuccess(c, "Metadata updated", meta)
}

// Cancel marks an event cancelled and notifies its attendees (admin only).
func (ec *EventController) Cancel(c *gin.Context) {
	eventID := c.Param("id")

	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" {
		req.Title = eventID
	}

	notified, err := ec.events.CancelEvent(eventID, req.Title)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Event cancelled", gin.H{"notified": notified})
}

func parseDateParam(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " date, expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}
