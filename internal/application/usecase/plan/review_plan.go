package plan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
)

// ReviewPlanInput represents the input for reviewing a submitted plan.
type ReviewPlanInput struct {
	PlanID        uuid.UUID
	EvaluatorID   uuid.UUID
	EvaluatorName string
	Role          entity.UserRole
	Status        entity.PlanStatus
	Feedback      string
}

// ReviewPlanOutput represents the output of a plan review.
type ReviewPlanOutput struct {
	Plan   *entity.Plan
	Review *entity.PlanReview
}

// ReviewPlanUseCase handles plan review logic.
type ReviewPlanUseCase struct {
	planRepo adapter.PlanRepository
	notifier adapter.PlanNotifier
}

// NewReviewPlanUseCase creates a new ReviewPlanUseCase instance. The notifier is optional.
func NewReviewPlanUseCase(planRepo adapter.PlanRepository, notifier adapter.PlanNotifier) *ReviewPlanUseCase {
	return &ReviewPlanUseCase{
		planRepo: planRepo,
		notifier: notifier,
	}
}

// Execute approves or rejects a submitted plan and notifies its planner.
func (uc *ReviewPlanUseCase) Execute(ctx context.Context, input ReviewPlanInput) (*ReviewPlanOutput, error) {
	if !input.Role.CanReviewPlans() {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodeNotEvaluator,
			"only users with EVALUATOR role can review plans",
			domainerror.ErrNotEvaluator,
		)
	}

	if input.Status != entity.PlanStatusApproved && input.Status != entity.PlanStatusRejected {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodeInvalidReviewStatus,
			fmt.Sprintf("invalid review status %q", input.Status),
			domainerror.ErrInvalidReviewStatus,
		)
	}

	p, err := findAccessiblePlan(ctx, uc.planRepo, input.PlanID, 0, input.Role)
	if err != nil {
		return nil, err
	}

	if p.Status != entity.PlanStatusSubmitted {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodeInvalidPlanTransition,
			fmt.Sprintf("only submitted plans can be reviewed, plan is %s", p.Status),
			domainerror.ErrInvalidPlanTransition,
		)
	}

	review := entity.NewPlanReview(p.ID, input.EvaluatorID, input.EvaluatorName, input.Status, strings.TrimSpace(input.Feedback))
	p.Status = input.Status
	p.UpdatedAt = review.ReviewedAt

	if err := uc.planRepo.CreateReview(ctx, p, review); err != nil {
		return nil, fmt.Errorf("failed to review plan: %w", err)
	}

	slog.Info("Plan reviewed", "plan_id", p.ID, "status", p.Status, "evaluator_id", input.EvaluatorID)

	if uc.notifier != nil && p.PlannerEmail != "" {
		if err := uc.notifier.QueuePlanReviewedEmail(ctx, adapter.PlanReviewedNotice{
			PlanID:        p.ID.String(),
			PlannerEmail:  p.PlannerEmail,
			PlannerName:   p.PlannerName,
			EvaluatorName: review.EvaluatorName,
			Status:        string(review.Status),
			Feedback:      review.Feedback,
			FiscalYear:    p.FiscalYear,
		}); err != nil {
			slog.Warn("Failed to queue plan reviewed email", "plan_id", p.ID, "error", err)
		}
	}

	return &ReviewPlanOutput{
		Plan:   p,
		Review: review,
	}, nil
}
