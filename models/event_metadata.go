// File: /models/event_metadata.go
package models

import (
	"time"
)

// EventMetadata holds the supplemental attributes this system layers onto a
// feed event, keyed by the feed's UID. Absence of a row is equivalent to
// all-default (no links, not cancelled). Rows are never deleted; cancellation
// is a flag, not a deletion.
type EventMetadata struct {
	EventID        string     `json:"event_id" gorm:"primaryKey;size:191"`
	ChatURL        *string    `json:"chat_url" gorm:"size:500"`
	PartifulLink   *string    `json:"partiful_link" gorm:"size:500"`
	InstaHandle    *string    `json:"insta_handle" gorm:"size:255"`
	EventOwner     *string    `json:"event_owner" gorm:"size:255"`
	OwnerInstagram *string    `json:"owner_instagram" gorm:"size:500"` // derived from InstaHandle
	FlyerURL       *string    `json:"flyer_url" gorm:"size:500"`
	Cancelled      bool       `json:"cancelled" gorm:"default:false"`
	CancelledAt    *time.Time `json:"cancelled_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (EventMetadata) TableName() string {
	return "event_metadata"
}
