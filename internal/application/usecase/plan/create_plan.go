package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// CreatePlanInput represents the input for plan creation.
type CreatePlanInput struct {
	OrganizationID       int64
	Role                 entity.UserRole
	PlannerID            uuid.UUID
	PlannerName          string
	PlannerEmail         string
	ExecutiveName        string
	Type                 entity.PlanType
	StrategicObjectiveID uuid.UUID
	SelectedObjectiveIDs []uuid.UUID
	ObjectiveWeights     map[uuid.UUID]decimal.Decimal
	FiscalYear           string
	FromDate             time.Time
	ToDate               time.Time
}

// CreatePlanOutput represents the output of plan creation.
type CreatePlanOutput struct {
	Plan *entity.Plan
}

// CreatePlanUseCase handles plan creation logic.
type CreatePlanUseCase struct {
	planRepo      adapter.PlanRepository
	objectiveRepo adapter.ObjectiveRepository
	orgRepo       adapter.OrganizationRepository
}

// NewCreatePlanUseCase creates a new CreatePlanUseCase instance.
func NewCreatePlanUseCase(
	planRepo adapter.PlanRepository,
	objectiveRepo adapter.ObjectiveRepository,
	orgRepo adapter.OrganizationRepository,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo:      planRepo,
		objectiveRepo: objectiveRepo,
		orgRepo:       orgRepo,
	}
}

// Execute creates a draft plan for the caller's organization.
func (uc *CreatePlanUseCase) Execute(ctx context.Context, input CreatePlanInput) (*CreatePlanOutput, error) {
	if !input.Role.CanEditPlans() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeForbiddenRole,
			"only planners can create plans",
			domainerror.ErrForbiddenRole,
		)
	}

	if err := validateCreatePlan(&input); err != nil {
		return nil, err
	}

	p := entity.NewPlan(
		input.OrganizationID,
		input.PlannerID,
		input.PlannerName,
		input.Type,
		input.StrategicObjectiveID,
		input.FiscalYear,
		input.FromDate,
		input.ToDate,
	)
	p.PlannerEmail = input.PlannerEmail
	p.ExecutiveName = strings.TrimSpace(input.ExecutiveName)
	p.SelectedObjectiveIDs = append([]uuid.UUID(nil), input.SelectedObjectiveIDs...)
	p.ObjectiveWeights = make(map[uuid.UUID]decimal.Decimal, len(input.ObjectiveWeights))
	for id, w := range input.ObjectiveWeights {
		p.ObjectiveWeights[id] = w
	}

	for _, id := range p.ObjectiveIDs() {
		if _, err := uc.objectiveRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, domainerror.ErrObjectiveNotFound) {
				return nil, domainerror.NewPlanningError(
					domainerror.ErrCodeObjectiveNotFound,
					fmt.Sprintf("objective %s not found", id),
					domainerror.ErrObjectiveNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find objective: %w", err)
		}
	}

	p.OrganizationName = uc.organizationName(ctx, input.OrganizationID)

	if err := uc.planRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	slog.Info("Plan created", "plan_id", p.ID, "organization_id", p.OrganizationID, "type", p.Type)

	return &CreatePlanOutput{Plan: p}, nil
}

func (uc *CreatePlanUseCase) organizationName(ctx context.Context, id int64) string {
	if uc.orgRepo == nil {
		return ""
	}
	organization, err := uc.orgRepo.FindByID(ctx, id)
	if err != nil || organization == nil {
		slog.Warn("Failed to resolve plan organization name", "organization_id", id, "error", err)
		return ""
	}
	return organization.Name
}

func validateCreatePlan(input *CreatePlanInput) error {
	input.PlannerName = strings.TrimSpace(input.PlannerName)
	input.FiscalYear = strings.TrimSpace(input.FiscalYear)

	if input.PlannerName == "" || input.FiscalYear == "" || input.StrategicObjectiveID == uuid.Nil {
		return domainerror.NewPlanError(
			domainerror.ErrCodeMissingPlanFields,
			"planner name, fiscal year and strategic objective are required",
			nil,
		)
	}

	if !input.Type.IsValid() {
		return domainerror.NewPlanError(
			domainerror.ErrCodeInvalidPlanType,
			fmt.Sprintf("invalid plan type %q", input.Type),
			domainerror.ErrInvalidPlanType,
		)
	}

	if !input.ToDate.After(input.FromDate) {
		return domainerror.NewPlanError(
			domainerror.ErrCodeInvalidPlanDates,
			"end date must be after start date",
			domainerror.ErrInvalidPlanDates,
		)
	}

	for id, w := range input.ObjectiveWeights {
		if !valueobject.IsValidItemWeight(w) {
			return domainerror.NewPlanningError(
				domainerror.ErrCodeInvalidWeight,
				fmt.Sprintf("weight for objective %s must be greater than 0 and at most 100", id),
				domainerror.ErrInvalidWeight,
			)
		}
	}

	return nil
}
