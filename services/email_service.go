// File: /services/email_service.go
package services

import (
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"eventshub-api/config"
	"eventshub-api/models"
)

// Mailer is the outbound email collaborator. Both methods are best-effort
// and never return an error: delivery failure must not fail the submission
// that triggered it, so the failure domain stays inside the implementation.
type Mailer interface {
	SendEventRequestEmail(request models.EventRequest)
	SendEditRequestEmail(userEmail, eventTitle, editID string)
}

// EmailService notifies the admin address about new submissions over SMTP.
// With no SMTP host configured every send is a logged no-op, which keeps
// local development working without a mail sandbox.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendEventRequestEmail mails the admin about a newly submitted event
// request. Failures are logged only.
func (es *EmailService) SendEventRequestEmail(request models.EventRequest) {
	if !es.configured() {
		log.Printf("email: SMTP not configured, skipping event request notification")
		return
	}

	flyer := "No flyer image"
	if request.FlyerURL != nil && *request.FlyerURL != "" {
		flyer = *request.FlyerURL
	}
	description := request.Description
	if description == "" {
		description = "No description provided"
	}

	body := strings.TrimSpace(fmt.Sprintf(`A new event request has been submitted:

Event Title: %s
Submitted By: %s
Event Date: %s
Event Time: %s
Location: %s
Description: %s
Flyer Image: %s
Request ID: %s

Please review this request in the admin dashboard.`,
		request.Title,
		request.UserEmail,
		request.EventDate.Format("Jan 2, 2006"),
		orNotSpecified(request.EventTime),
		orNotSpecified(request.Location),
		description,
		flyer,
		request.ID,
	))

	es.send(fmt.Sprintf("New Event Request: %s", request.Title), body)
}

// SendEditRequestEmail mails the admin about a newly submitted edit
// proposal. Failures are logged only.
func (es *EmailService) SendEditRequestEmail(userEmail, eventTitle, editID string) {
	if !es.configured() {
		log.Printf("email: SMTP not configured, skipping edit request notification")
		return
	}

	if eventTitle == "" {
		eventTitle = "Unknown Event"
	}

	body := strings.TrimSpace(fmt.Sprintf(`A new edit request has been submitted:

Event: %s
Submitted By: %s
Request ID: %s

Please review this edit request in the admin dashboard.`,
		eventTitle,
		userEmail,
		editID,
	))

	es.send(fmt.Sprintf("New Edit Request for Event: %s", eventTitle), body)
}

func (es *EmailService) configured() bool {
	return es.config.SMTPHost != ""
}

func (es *EmailService) send(subject, body string) {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", es.config.AdminEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		log.Printf("email: failed to send %q: %v", subject, err)
	}
}

func orNotSpecified(v string) string {
	if v == "" {
		return "Not specified"
	}
	return v
}
