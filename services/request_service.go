// File: /services/request_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventshub-api/models"
	"eventshub-api/utils"
)

// MaxRequestsPerDay caps how many event requests a user may submit within one
// calendar day.
const MaxRequestsPerDay = 3

// RequestService runs the new-event request workflow: submission with a
// daily limit, the pending -> approved|rejected state machine, and the
// notifications each transition fans out.
//
// The daily limit is soft: the count and the insert are separate operations,
// so two racing submissions can briefly overshoot the cap.
type RequestService struct {
	db            *gorm.DB
	notifications *NotificationService
	mailer        Mailer

	now func() time.Time
}

func NewRequestService(db *gorm.DB, notifications *NotificationService, mailer Mailer) *RequestService {
	return &RequestService{
		db:            db,
		notifications: notifications,
		mailer:        mailer,
		now:           time.Now,
	}
}

// SubmitRequestInput carries the user-provided fields of a new request.
type SubmitRequestInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date" binding:"required"`
	EventTime   string    `json:"event_time"`
	Location    string    `json:"location"`
	FlyerURL    *string   `json:"flyer_url"`
}

// Submit persists a pending request, notifies the admin queue and sends the
// best-effort email. Fails with ErrRateLimited once the user has
// MaxRequestsPerDay requests created within [local midnight, next midnight).
func (s *RequestService) Submit(input SubmitRequestInput, userID, userEmail string) (string, error) {
	if strings.TrimSpace(input.Title) == "" {
		return "", fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.EventDate.IsZero() {
		return "", fmt.Errorf("%w: event date is required", ErrValidation)
	}
	if input.FlyerURL != nil && *input.FlyerURL != "" && !utils.IsValidHTTPURL(*input.FlyerURL) {
		return "", fmt.Errorf("%w: flyer_url must be an absolute http(s) url", ErrValidation)
	}

	count, err := s.countToday(userID)
	if err != nil {
		return "", err
	}
	if count >= MaxRequestsPerDay {
		return "", fmt.Errorf("%w: you've reached the daily limit of %d event requests, please try again tomorrow", ErrRateLimited, MaxRequestsPerDay)
	}

	request := models.EventRequest{
		ID:          uuid.New().String(),
		UserID:      userID,
		UserEmail:   userEmail,
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		EventTime:   input.EventTime,
		Location:    input.Location,
		FlyerURL:    input.FlyerURL,
		Status:      models.RequestStatusPending,
		CreatedAt:   s.now(),
	}

	if err := s.db.Create(&request).Error; err != nil {
		return "", err
	}

	// Side effects run after the authoritative write and never fail it.
	s.notifications.NotifyAdmin(
		models.NotificationTypeEventRequest,
		"New Event Request",
		fmt.Sprintf("%s submitted a new event request: %q", userEmail, input.Title),
		request.ID,
		userEmail,
	)
	s.mailer.SendEventRequestEmail(request)

	return request.ID, nil
}

// countToday counts the user's requests created in the current local
// calendar day, window [midnight, next midnight).
func (s *RequestService) countToday(userID string) (int64, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int64
	err := s.db.Model(&models.EventRequest{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, dayStart, dayEnd).
		Count(&count).Error
	return count, err
}

// Decide moves a pending request to approved or rejected and notifies the
// submitter. Rejection requires non-empty admin notes. Terminal states are
// not reversible through this workflow. Only admins may decide; the service
// trusts the caller's role flag.
func (s *RequestService) Decide(requestID string, status models.RequestStatus, adminNotes string, isAdmin bool) error {
	if !isAdmin {
		return fmt.Errorf("%w: only admins can review requests", ErrUnauthorized)
	}
	if status != models.RequestStatusApproved && status != models.RequestStatusRejected {
		return fmt.Errorf("%w: status must be approved or rejected", ErrValidation)
	}
	if status == models.RequestStatusRejected && strings.TrimSpace(adminNotes) == "" {
		return fmt.Errorf("%w: rejection requires admin notes", ErrValidation)
	}

	var request models.EventRequest
	if err := s.db.First(&request, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: request %s", ErrNotFound, requestID)
		}
		return err
	}

	if request.Status != models.RequestStatusPending {
		return fmt.Errorf("%w: request is already %s", ErrInvalidState, request.Status)
	}

	now := s.now()
	err := s.db.Model(&request).Updates(map[string]interface{}{
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
			request.UserID,
			models.NotificationTypeRequestApproved,
			"Event Request Approved",
			fmt.Sprintf("Your event request %q has been approved!", request.Title),
			request.ID,
		)
	case models.RequestStatusRejected:
		s.notifications.Notify(
			request.UserID,
			models.NotificationTypeRequestRejected,
			"Event Request Rejected",
			fmt.Sprintf("Your event request %q was rejected. Reason: %s", request.Title, adminNotes),
			request.ID,
		)
	}

	return nil
}

// Delete removes an approved request on behalf of its owner, modelling
// "this is on the calendar now, clear my request record". Non-owners get
// ErrUnauthorized; non-approved requests get ErrInvalidState.
func (s *RequestService) Delete(requestID, userID string) error {
	var request models.EventRequest
	if err := s.db.First(&request, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: request %s", ErrNotFound, requestID)
		}
		return err
	}

	if request.UserID != userID {
		return fmt.Errorf("%w: you can only delete your own requests", ErrUnauthorized)
	}
	if request.Status != models.RequestStatusApproved {
		return fmt.Errorf("%w: only approved requests can be deleted", ErrInvalidState)
	}

	return s.db.Delete(&request).Error
}

// Pending lists the requests awaiting review, oldest first.
func (s *RequestService) Pending() ([]models.EventRequest, error) {
	var requests []models.EventRequest
	err := s.db.Where("status = ?", models.RequestStatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

// ForUser lists all of a user's requests, newest first.
func (s *RequestService) ForUser(userID string) ([]models.EventRequest, error) {
	var requests []models.EventRequest
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}
