package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents the status of an email job in the queue.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType represents the type of email template.
type EmailTemplateType string

const (
	TemplatePlanSubmitted EmailTemplateType = "plan_submitted"
	TemplatePlanReviewed  EmailTemplateType = "plan_reviewed"
)

const defaultEmailMaxAttempts = 3

// Retry delays after the first, second and later failures.
var emailRetryDelays = []time.Duration{0, time.Minute, 5 * time.Minute}

// EmailJob is a queued plan workflow notification.
type EmailJob struct {
	ID             uuid.UUID
	PlanID         uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]string
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a pending EmailJob for a plan.
func NewEmailJob(planID uuid.UUID, templateType EmailTemplateType, recipientEmail, recipientName, subject string, data map[string]string) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		PlanID:         planID,
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    defaultEmailMaxAttempts,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the job as being sent.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful delivery.
func (e *EmailJob) MarkSent(resendID string, now time.Time) {
	e.Status = EmailStatusSent
	e.ResendID = resendID
	e.ProcessedAt = &now
}

// MarkFailed records a failed attempt and schedules a retry while attempts remain.
func (e *EmailJob) MarkFailed(err error, permanent bool, now time.Time) {
	e.Attempts++
	e.LastError = err.Error()

	if permanent || e.Attempts >= e.MaxAttempts {
		e.Status = EmailStatusFailed
		e.ProcessedAt = &now
		return
	}

	delay := emailRetryDelays[len(emailRetryDelays)-1]
	if e.Attempts < len(emailRetryDelays) {
		delay = emailRetryDelays[e.Attempts]
	}
	e.Status = EmailStatusPending
	e.ScheduledAt = now.Add(delay)
}

// Value returns a template value, or "" when absent.
func (e *EmailJob) Value(key string) string {
	return e.TemplateData[key]
}
