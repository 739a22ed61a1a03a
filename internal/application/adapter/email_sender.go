package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To       string
	Name     string
	Subject  string
	HTML     string
	Text     string
	Template string // Template type, attached as a provider tag
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// PlanNotifier defines the interface for queueing plan workflow notifications.
type PlanNotifier interface {
	// QueuePlanSubmittedEmail queues a notice to the review inbox that a plan awaits review.
	QueuePlanSubmittedEmail(ctx context.Context, input PlanSubmittedNotice) error

	// QueuePlanReviewedEmail queues the evaluator's decision to the planner.
	QueuePlanReviewedEmail(ctx context.Context, input PlanReviewedNotice) error
}

// PlanSubmittedNotice represents the data of a plan submission notice.
type PlanSubmittedNotice struct {
	PlanID           string
	OrganizationName string
	PlannerName      string
	FiscalYear       string
	ReportURL        string
}

// PlanReviewedNotice represents the data of a plan review notice.
type PlanReviewedNotice struct {
	PlanID        string
	PlannerEmail  string
	PlannerName   string
	EvaluatorName string
	Status        string
	Feedback      string
	FiscalYear    string
}
