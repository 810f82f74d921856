// File: /models/calendar_event.go
package models

import (
	"time"
)

// CalendarEvent is one event as parsed from the external calendar feed.
// Events are regenerated wholesale on every fetch and never mutated here;
// the feed owns their existence, timing and core description.
type CalendarEvent struct {
	ID          string    `json:"id"` // feed UID, stable across fetches
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
}

// MergedEvent is a CalendarEvent flattened together with its stored metadata.
// This is the only event representation the API and export layers expose.
// Metadata fields are nil/false when no metadata record exists.
type MergedEvent struct {
	CalendarEvent

	ChatURL        *string `json:"chat_url"`
	PartifulLink   *string `json:"partiful_link"`
	InstaHandle    *string `json:"insta_handle"`
	EventOwner     *string `json:"event_owner"`
	OwnerInstagram *string `json:"owner_instagram"`
	FlyerURL       *string `json:"flyer_url"`
	Cancelled      bool    `json:"cancelled"`
}
