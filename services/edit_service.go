// File: /services/edit_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventshub-api/models"
)

// EditService runs the edit-proposal workflow. It shares the request
// workflow's state machine shape (pending -> approved|rejected) but has no
// daily limit, and approval has a side effect: the proposed patch is merged
// into the event's metadata. Admins can skip the queue entirely with
// ApplyDirect so they never wait on their own review.
type EditService struct {
	db            *gorm.DB
	metadata      *MetadataService
	notifications *NotificationService
	mailer        Mailer

	now func() time.Time
}

func NewEditService(db *gorm.DB, metadata *MetadataService, notifications *NotificationService, mailer Mailer) *EditService {
	return &EditService{
		db:            db,
		metadata:      metadata,
		notifications: notifications,
		mailer:        mailer,
		now:           time.Now,
	}
}

// Submit records a pending edit proposal against an existing event, with a
// snapshot of the event as the submitter saw it, and notifies the admin
// queue.
func (s *EditService) Submit(eventID string, original models.MergedEvent, patch models.MetadataPatch, userID, userEmail string) (string, error) {
	if eventID == "" {
		return "", fmt.Errorf("%w: event id is required", ErrValidation)
	}
	if patch.IsEmpty() {
		return "", fmt.Errorf("%w: no changes proposed", ErrValidation)
	}
	// Reject bad links at submission so admins never review garbage URLs.
	if err := ValidatePatchLinks(patch); err != nil {
		return "", err
	}

	edit := models.EventEdit{
		ID:              uuid.New().String(),
		EventID:         eventID,
		UserID:          userID,
		UserEmail:       userEmail,
		OriginalEvent:   models.EventSnapshot(original),
		ProposedChanges: patch,
		Status:          models.RequestStatusPending,
		CreatedAt:       s.now(),
	}

	if err := s.db.Create(&edit).Error; err != nil {
		return "", err
	}

	s.notifications.NotifyAdmin(
		models.NotificationTypeEventEdit,
		"New Edit Request",
		fmt.Sprintf("%s requested to edit an event", userEmail),
		edit.ID,
		userEmail,
	)
	s.mailer.SendEditRequestEmail(userEmail, original.Title, edit.ID)

	return edit.ID, nil
}

// Decide moves a pending edit to approved or rejected. Approval merges the
// proposed patch into the metadata store (field-level merge, instagram
// handles normalized); a repeat of the same approval converges rather than
// accumulates. Rejection requires non-empty admin notes.
func (s *EditService) Decide(editID string, status models.RequestStatus, adminNotes string, isAdmin bool) error {
	if !isAdmin {
		return fmt.Errorf("%w: only admins can review edits", ErrUnauthorized)
	}
	if status != models.RequestStatusApproved && status != models.RequestStatusRejected {
		return fmt.Errorf("%w: status must be approved or rejected", ErrValidation)
	}
	if status == models.RequestStatusRejected && strings.TrimSpace(adminNotes) == "" {
		return fmt.Errorf("%w: rejection requires admin notes", ErrValidation)
	}

	var edit models.EventEdit
	if err := s.db.First(&edit, "id = ?", editID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: edit %s", ErrNotFound, editID)
		}
		return err
	}

	if edit.Status != models.RequestStatusPending {
		return fmt.Errorf("%w: edit is already %s", ErrInvalidState, edit.Status)
	}

	if status == models.RequestStatusApproved {
		// The metadata write is the authoritative side effect; bail before
		// flipping the status if it fails so the edit stays reviewable.
		if err := s.metadata.Set(edit.EventID, edit.ProposedChanges); err != nil {
			return err
		}
	}

	now := s.now()
	err := s.db.Model(&edit).Updates(map[string]interface{}{
		"status":      status,
		"admin_notes": adminNotes,
		"reviewed_at": now,
	}).Error
	if err != nil {
		return err
	}

	switch status {
	case models.RequestStatusApproved:
		s.notifications.Notify(
			edit.UserID,
			models.NotificationTypeEditApproved,
			"Edit Request Approved",
			"Your edit request has been approved and applied!",
			edit.ID,
		)
	case models.RequestStatusRejected:
		s.notifications.Notify(
			edit.UserID,
			models.NotificationTypeEditRejected,
			"Edit Request Rejected",
			fmt.Sprintf("Your edit request was rejected. Reason: %s", adminNotes),
			edit.ID,
		)
	}

	return nil
}

// ApplyDirect writes a patch straight to the metadata store, bypassing the
// pending/approval machine. The service trusts the passed-in role flag;
// verifying it is the transport layer's job. Repeated identical calls are
// safe because the underlying write is a merge.
func (s *EditService) ApplyDirect(eventID string, patch models.MetadataPatch, isAdmin bool) error {
	if !isAdmin {
		return fmt.Errorf("%w: only admins can apply edits directly", ErrUnauthorized)
	}
	return s.metadata.Set(eventID, patch)
}

// Pending lists edits awaiting review, oldest first.
func (s *EditService) Pending() ([]models.EventEdit, error) {
	var edits []models.EventEdit
	err := s.db.Where("status = ?", models.RequestStatusPending).
		Order("created_at ASC").
		Find(&edits).Error
	return edits, err
}

// ForUser lists all of a user's edit proposals, newest first.
func (s *EditService) ForUser(userID string) ([]models.EventEdit, error) {
	var edits []models.EventEdit
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&edits).Error
	return edits, err
}
