// File: /models/event_request.go
package models

import (
	"time"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// EventRequest is a user-submitted proposal for a new calendar event.
// It moves pending -> approved|rejected through an admin decision; the
// terminal states are not reversible through this workflow.
type EventRequest struct {
	ID          string        `json:"id" gorm:"primaryKey;size:191"`
	UserID      string        `json:"user_id" gorm:"not null;size:191;index"`
	UserEmail   string        `json:"user_email" gorm:"not null;size:255"`
	Title       string        `json:"title" gorm:"not null;size:255"`
	Description string        `json:"description" gorm:"type:text"`
	EventDate   time.Time     `json:"event_date" gorm:"not null"`
	EventTime   string        `json:"event_time" gorm:"size:50"`
	Location    string        `json:"location" gorm:"size:500"`
	FlyerURL    *string       `json:"flyer_url" gorm:"size:500"`
	Status      RequestStatus `json:"status" gorm:"not null;size:20;index;default:pending"`
	AdminNotes  string        `json:"admin_notes" gorm:"type:text"`
	ReviewedAt  *time.Time    `json:"reviewed_at"`
	CreatedAt   time.Time     `json:"created_at" gorm:"index"`
}

// EventEdit is a user-submitted change proposal against an existing calendar
// event (referenced by feed UID, not by request id). On approval the
// ProposedChanges patch is merged into the event's metadata.
type EventEdit struct {
	ID              string        `json:"id" gorm:"primaryKey;size:191"`
	EventID         string        `json:"event_id" gorm:"not null;size:191;index"`
	UserID          string        `json:"user_id" gorm:"not null;size:191;index"`
	UserEmail       string        `json:"user_email" gorm:"not null;size:255"`
	OriginalEvent   EventSnapshot `json:"original_event" gorm:"type:json"`
	ProposedChanges MetadataPatch `json:"proposed_changes" gorm:"type:json"`
	Status          RequestStatus `json:"status" gorm:"not null;size:20;index;default:pending"`
	AdminNotes      string        `json:"admin_notes" gorm:"type:text"`
	ReviewedAt      *time.Time    `json:"reviewed_at"`
	CreatedAt       time.Time     `json:"created_at"`
}
