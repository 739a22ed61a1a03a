// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
)

// Service queues plan workflow notifications.
type Service struct {
	queue       adapter.EmailQueueRepository
	reviewInbox string
	appBaseURL  string
}

// NewService creates a new email service. Submission notices go to reviewInbox.
func NewService(queue adapter.EmailQueueRepository, reviewInbox, appBaseURL string) *Service {
	return &Service{
		queue:       queue,
		reviewInbox: reviewInbox,
		appBaseURL:  strings.TrimRight(appBaseURL, "/"),
	}
}

// QueuePlanSubmittedEmail queues a notice to the review inbox that a plan awaits review.
func (s *Service) QueuePlanSubmittedEmail(ctx context.Context, input adapter.PlanSubmittedNotice) error {
	if s.reviewInbox == "" {
		return domainerror.NewEmailError(
			domainerror.ErrCodeMissingRecipient,
			"no review inbox configured",
			domainerror.ErrMissingRecipient,
		)
	}

	subject := fmt.Sprintf("Plan submitted for review - %s %s", input.OrganizationName, input.FiscalYear)

	templateData := map[string]string{
		"organization_name": input.OrganizationName,
		"planner_name":      input.PlannerName,
		"fiscal_year":       input.FiscalYear,
		"report_url":        input.ReportURL,
		"plan_url":          s.planURL(input.PlanID),
	}

	return s.enqueue(ctx, input.PlanID, entity.TemplatePlanSubmitted, s.reviewInbox, "", subject, templateData)
}

// QueuePlanReviewedEmail queues the evaluator's decision to the planner.
func (s *Service) QueuePlanReviewedEmail(ctx context.Context, input adapter.PlanReviewedNotice) error {
	if input.PlannerEmail == "" {
		return domainerror.NewEmailError(
			domainerror.ErrCodeMissingRecipient,
			"plan has no planner email",
			domainerror.ErrMissingRecipient,
		)
	}

	subject := fmt.Sprintf("Your %s plan was %s", input.FiscalYear, strings.ToLower(input.Status))

	templateData := map[string]string{
		"planner_name":   input.PlannerName,
		"evaluator_name": input.EvaluatorName,
		"status":         input.Status,
		"feedback":       input.Feedback,
		"fiscal_year":    input.FiscalYear,
		"plan_url":       s.planURL(input.PlanID),
	}

	return s.enqueue(ctx, input.PlanID, entity.TemplatePlanReviewed, input.PlannerEmail, input.PlannerName, subject, templateData)
}

func (s *Service) enqueue(ctx context.Context, planID string, templateType entity.EmailTemplateType, to, name, subject string, data map[string]string) error {
	id, err := uuid.Parse(planID)
	if err != nil {
		return fmt.Errorf("invalid plan id %q: %w", planID, err)
	}

	job := entity.NewEmailJob(id, templateType, to, name, subject, data)
	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			fmt.Sprintf("failed to queue %s email", templateType),
			err,
		)
	}

	return nil
}

func (s *Service) planURL(planID string) string {
	if s.appBaseURL == "" {
		return ""
	}
	return s.appBaseURL + "/plans/" + planID
}

// Ensure Service implements adapter.PlanNotifier.
var _ adapter.PlanNotifier = (*Service)(nil)
