package plan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
)

// SubmitPlanInput represents the input for submitting a plan for review.
type SubmitPlanInput struct {
	PlanID         uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
}

// SubmitPlanOutput represents the output of a plan submission.
type SubmitPlanOutput struct {
	Plan      *entity.Plan
	ReportURL string // Empty when archiving is disabled or failed
}

// SubmitPlanUseCase handles plan submission logic.
type SubmitPlanUseCase struct {
	planRepo adapter.PlanRepository
	reader   *PlanReader
	encoder  adapter.ReportEncoder
	archive  adapter.ReportArchive
	notifier adapter.PlanNotifier
}

// NewSubmitPlanUseCase creates a new SubmitPlanUseCase instance.
// Encoder, archive and notifier are optional.
func NewSubmitPlanUseCase(
	planRepo adapter.PlanRepository,
	reader *PlanReader,
	encoder adapter.ReportEncoder,
	archive adapter.ReportArchive,
	notifier adapter.PlanNotifier,
) *SubmitPlanUseCase {
	return &SubmitPlanUseCase{
		planRepo: planRepo,
		reader:   reader,
		encoder:  encoder,
		archive:  archive,
		notifier: notifier,
	}
}

// Execute moves a draft or rejected plan to SUBMITTED.
func (uc *SubmitPlanUseCase) Execute(ctx context.Context, input SubmitPlanInput) (*SubmitPlanOutput, error) {
	if !input.Role.CanEditPlans() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeForbiddenRole,
			"only planners can submit plans",
			domainerror.ErrForbiddenRole,
		)
	}

	// Submission is limited to the owning organization, even for admins.
	p, err := findAccessiblePlan(ctx, uc.planRepo, input.PlanID, input.OrganizationID, entity.UserRolePlanner)
	if err != nil {
		return nil, err
	}

	if !p.CanSubmit() {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodeInvalidPlanTransition,
			fmt.Sprintf("plan in status %s cannot be submitted", p.Status),
			domainerror.ErrInvalidPlanTransition,
		)
	}

	exists, err := uc.planRepo.ExistsActiveForObjective(ctx, p.OrganizationID, p.StrategicObjectiveID, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing plans: %w", err)
	}
	if exists {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodeDuplicatePlanSubmission,
			"a plan for this organization and strategic objective has already been submitted or approved",
			domainerror.ErrDuplicatePlanSubmission,
		)
	}

	p.MarkSubmitted(time.Now().UTC())
	if err := uc.planRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to submit plan: %w", err)
	}

	slog.Info("Plan submitted", "plan_id", p.ID, "organization_id", p.OrganizationID)

	reportURL := uc.archiveReport(ctx, p)

	if uc.notifier != nil {
		if err := uc.notifier.QueuePlanSubmittedEmail(ctx, adapter.PlanSubmittedNotice{
			PlanID:           p.ID.String(),
			OrganizationName: p.OrganizationName,
			PlannerName:      p.PlannerName,
			FiscalYear:       p.FiscalYear,
			ReportURL:        reportURL,
		}); err != nil {
			slog.Warn("Failed to queue plan submitted email", "plan_id", p.ID, "error", err)
		}
	}

	return &SubmitPlanOutput{
		Plan:      p,
		ReportURL: reportURL,
	}, nil
}

// archiveReport stores the plan's exported report. Failures are logged and leave the URL empty.
func (uc *SubmitPlanUseCase) archiveReport(ctx context.Context, p *entity.Plan) string {
	if uc.archive == nil || uc.encoder == nil {
		return ""
	}

	report, err := uc.reader.Report(ctx, p)
	if err != nil {
		slog.Warn("Failed to build plan report for archive", "plan_id", p.ID, "error", err)
		return ""
	}

	body, err := uc.encoder.Encode(report)
	if err != nil {
		slog.Warn("Failed to encode plan report for archive", "plan_id", p.ID, "error", err)
		return ""
	}

	key := fmt.Sprintf("plans/%d/%s/report%s", p.OrganizationID, p.ID, uc.encoder.Extension())
	location, err := uc.archive.Store(ctx, key, uc.encoder.ContentType(), body)
	if err != nil {
		slog.Warn("Failed to archive plan report", "plan_id", p.ID, "key", key, "error", err)
		return ""
	}

	slog.Info("Plan report archived", "plan_id", p.ID, "location", location)
	return location
}
