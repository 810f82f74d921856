// File: /models/going_record.go
package models

import (
	"time"
)

// GoingRecord marks a user as going to an event. Presence of the row is the
// "going" state itself (set membership); there is no boolean field to flip.
// The composite primary key doubles as the uniqueness guarantee, so two
// racing toggles cannot both insert.
type GoingRecord struct {
	EventID   string    `json:"event_id" gorm:"primaryKey;size:191"`
	UserID    string    `json:"user_id" gorm:"primaryKey;size:191"`
	UserName  string    `json:"user_name" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}

func (GoingRecord) TableName() string {
	return "event_going"
}
