// File: /services/going_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"eventshub-api/models"
)

// GoingService tracks per-user attendance as set membership: a GoingRecord
// existing for (eventID, userID) is the "going" state. Toggle is
// check-then-act; the composite primary key stops two racing toggles from
// both inserting, though a racing delete can still be lost (accepted gap).
type GoingService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewGoingService(db *gorm.DB, notifications *NotificationService) *GoingService {
	return &GoingService{
		db:            db,
		notifications: notifications,
	}
}

// Toggle flips the user's going state for the event and returns the new
// state: true if the user is now going, false if they withdrew.
func (s *GoingService) Toggle(eventID, userID, userName string) (bool, error) {
	if eventID == "" || userID == "" {
		return false, fmt.Errorf("%w: event id and user id are required", ErrValidation)
	}

	var existing models.GoingRecord
	err := s.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&existing).Error
	if err == nil {
		if err := s.db.Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	record := models.GoingRecord{
		EventID:  eventID,
		UserID:   userID,
		UserName: userName,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return false, err
	}
	return true, nil
}

// CountGoing returns the attendee count per event. Every requested id is
// present in the result, zero included. Counts are independent per event; no
// cross-event consistency is promised.
func (s *GoingService) CountGoing(eventIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(eventIDs))
	for _, id := range eventIDs {
		counts[id] = 0
	}
	if len(eventIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		EventID string
		Total   int
	}
	err := s.db.Model(&models.GoingRecord{}).
		Select("event_id, COUNT(*) AS total").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.EventID] = row.Total
	}
	return counts, nil
}

// StatusFor reports, per event, whether the user is going.
func (s *GoingService) StatusFor(eventIDs []string, userID string) (map[string]bool, error) {
	status := make(map[string]bool, len(eventIDs))
	for _, id := range eventIDs {
		status[id] = false
	}
	if len(eventIDs) == 0 || userID == "" {
		return status, nil
	}

	var records []models.GoingRecord
	err := s.db.Where("user_id = ? AND event_id IN ?", userID, eventIDs).Find(&records).Error
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		status[record.EventID] = true
	}
	return status, nil
}

// AttendeesFor lists the going records for one event.
func (s *GoingService) AttendeesFor(eventID string) ([]models.GoingRecord, error) {
	var records []models.GoingRecord
	err := s.db.Where("event_id = ?", eventID).Find(&records).Error
	return records, err
}

// NotifyCancelled tells every attendee the event was cancelled, then deletes
// all going records for it: cancellation clears attendance state entirely.
// Returns the number of attendees processed; zero is a normal outcome.
func (s *GoingService) NotifyCancelled(eventID, eventTitle string) (int, error) {
	records, err := s.AttendeesFor(eventID)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	for _, record := range records {
		s.notifications.Notify(
			record.UserID,
			models.NotificationTypeEventCancelled,
			"Event Cancelled",
			fmt.Sprintf("The event %q has been cancelled or removed.", eventTitle),
			eventID,
		)
	}

	if err := s.db.Where("event_id = ?", eventID).Delete(&models.GoingRecord{}).Error; err != nil {
		return 0, err
	}

	return len(records), nil
}
