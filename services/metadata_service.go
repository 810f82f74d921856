// File: /services/metadata_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"eventshub-api/models"
	"eventshub-api/utils"
)

// MetadataService is the authoritative store of per-event supplemental
// attributes, keyed by the feed's event UID. Writes are field-level merges:
// independent writers (direct admin edits, edit approvals, cancellation) must
// not clobber each other's unrelated fields, so Set never replaces a whole
// row.
type MetadataService struct {
	db *gorm.DB
}

func NewMetadataService(db *gorm.DB) *MetadataService {
	return &MetadataService{db: db}
}

// Get returns the metadata for one event, or nil when no record exists.
// Absence is a valid state equivalent to all-default.
func (s *MetadataService) Get(eventID string) (*models.EventMetadata, error) {
	var meta models.EventMetadata
	err := s.db.Where("event_id = ?", eventID).First(&meta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// GetAll returns the full metadata map in a single read so the reconciler
// pays one round trip regardless of event count.
func (s *MetadataService) GetAll() (map[string]models.EventMetadata, error) {
	var rows []models.EventMetadata
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]models.EventMetadata, len(rows))
	for _, row := range rows {
		out[row.EventID] = row
	}
	return out, nil
}

// Set merges the patch into the event's metadata, creating the row on first
// write. Unspecified patch fields keep their stored values; an explicit empty
// string clears the field. Repeated identical calls converge on the same row
// state. UpdatedAt is refreshed on every write.
func (s *MetadataService) Set(eventID string, patch models.MetadataPatch) error {
	if eventID == "" {
		return fmt.Errorf("%w: event id is required", ErrValidation)
	}
	if err := ValidatePatchLinks(patch); err != nil {
		return err
	}

	meta := models.EventMetadata{EventID: eventID}
	if err := s.db.Where("event_id = ?", eventID).FirstOrCreate(&meta).Error; err != nil {
		return err
	}

	updates := buildMetadataUpdates(patch, time.Now())
	return s.db.Model(&models.EventMetadata{}).Where("event_id = ?", eventID).Updates(updates).Error
}

// buildMetadataUpdates turns a tri-state patch into column updates. Only
// fields present in the patch appear in the map; nil column values clear the
// stored field.
func buildMetadataUpdates(patch models.MetadataPatch, now time.Time) map[string]interface{} {
	updates := map[string]interface{}{
		"updated_at": now,
	}

	if patch.ChatURL != nil {
		updates["chat_url"] = nullableString(*patch.ChatURL)
	}
	if patch.PartifulLink != nil {
		updates["partiful_link"] = nullableString(*patch.PartifulLink)
	}
	if patch.FlyerURL != nil {
		updates["flyer_url"] = nullableString(*patch.FlyerURL)
	}

	if patch.InstaHandle != nil {
		handle := NormalizeInstagramHandle(*patch.InstaHandle)
		if handle == "" {
			updates["insta_handle"] = nil
			updates["owner_instagram"] = nil
		} else {
			updates["insta_handle"] = handle
			updates["owner_instagram"] = "https://instagram.com/" + handle
		}

		// The owner display name falls back to the handle when not given.
		owner := handle
		if patch.EventOwner != nil && strings.TrimSpace(*patch.EventOwner) != "" {
			owner = strings.TrimSpace(*patch.EventOwner)
		}
		updates["event_owner"] = nullableString(owner)
	} else if patch.EventOwner != nil {
		updates["event_owner"] = nullableString(*patch.EventOwner)
	}

	if patch.Cancelled != nil {
		updates["cancelled"] = *patch.Cancelled
		if *patch.Cancelled {
			updates["cancelled_at"] = now
		}
	}

	return updates
}

// ValidatePatchLinks rejects link fields that are set to something other than
// an absolute http(s) URL. Empty strings pass: they mean "clear".
func ValidatePatchLinks(patch models.MetadataPatch) error {
	links := []struct {
		name  string
		value *string
	}{
		{"chat_url", patch.ChatURL},
		{"partiful_link", patch.PartifulLink},
		{"flyer_url", patch.FlyerURL},
	}
	for _, link := range links {
		if link.value == nil || strings.TrimSpace(*link.value) == "" {
			continue
		}
		if !utils.IsValidHTTPURL(*link.value) {
			return fmt.Errorf("%w: %s must be an absolute http(s) url", ErrValidation, link.name)
		}
	}
	return nil
}

// NormalizeInstagramHandle strips whitespace and a leading @ so stored
// handles are always bare usernames.
func NormalizeInstagramHandle(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

func nullableString(v string) interface{} {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return v
}
