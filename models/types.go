// File: /models/types.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MetadataPatch is a partial update against an event's metadata. Every field
// is tri-state: nil means "leave unchanged", a pointer to the empty string
// means "clear the stored value", anything else sets it.
type MetadataPatch struct {
	ChatURL      *string `json:"chat_url,omitempty"`
	PartifulLink *string `json:"partiful_link,omitempty"`
	InstaHandle  *string `json:"insta_handle,omitempty"`
	EventOwner   *string `json:"event_owner,omitempty"`
	FlyerURL     *string `json:"flyer_url,omitempty"`
	Cancelled    *bool   `json:"cancelled,omitempty"`
}

// IsEmpty reports whether the patch would change nothing.
func (p MetadataPatch) IsEmpty() bool {
	return p.ChatURL == nil && p.PartifulLink == nil && p.InstaHandle == nil &&
		p.EventOwner == nil && p.FlyerURL == nil && p.Cancelled == nil
}

// Value implements driver.Valuer interface for database storage
func (p MetadataPatch) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner interface for database retrieval
func (p *MetadataPatch) Scan(value interface{}) error {
	if value == nil {
		*p = MetadataPatch{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into MetadataPatch", value)
	}
}

// GormDataType returns the data type for GORM
func (MetadataPatch) GormDataType() string {
	return "json"
}

// EventSnapshot stores the merged event as it looked when an edit proposal
// was submitted, so admins review the diff against what the submitter saw.
type EventSnapshot MergedEvent

// Value implements driver.Valuer interface for database storage
func (s EventSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner interface for database retrieval
func (s *EventSnapshot) Scan(value interface{}) error {
	if value == nil {
		*s = EventSnapshot{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into EventSnapshot", value)
	}
}

// GormDataType returns the data type for GORM
func (EventSnapshot) GormDataType() string {
	return "json"
}
