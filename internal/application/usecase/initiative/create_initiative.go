package initiative

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// CreateInitiativeInput represents the input for initiative creation.
type CreateInitiativeInput struct {
	ObjectiveID    uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
	Name           string
	Weight         decimal.Decimal
}

// CreateInitiativeOutput represents the output of initiative creation.
type CreateInitiativeOutput struct {
	Initiative *entity.Initiative
	Weights    budget.WeightCheckResult
}

// CreateInitiativeUseCase handles initiative creation logic.
type CreateInitiativeUseCase struct {
	objectiveRepo  adapter.ObjectiveRepository
	initiativeRepo adapter.InitiativeRepository
	cache          adapter.SummaryCache
	validator      budget.WeightValidator
}

// NewCreateInitiativeUseCase creates a new CreateInitiativeUseCase instance.
func NewCreateInitiativeUseCase(
	objectiveRepo adapter.ObjectiveRepository,
	initiativeRepo adapter.InitiativeRepository,
	cache adapter.SummaryCache,
	rules valueobject.PlanningRules,
) *CreateInitiativeUseCase {
	return &CreateInitiativeUseCase{
		objectiveRepo:  objectiveRepo,
		initiativeRepo: initiativeRepo,
		cache:          cache,
		validator:      budget.NewWeightValidator(rules),
	}
}

// Execute creates an organization-owned initiative under an objective.
func (uc *CreateInitiativeUseCase) Execute(ctx context.Context, input CreateInitiativeInput) (*CreateInitiativeOutput, error) {
	if !input.Role.CanEditPlans() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeForbiddenRole,
			"only planners can create initiatives",
			domainerror.ErrForbiddenRole,
		)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeMissingPlanningFields,
			"initiative name is required",
			nil,
		)
	}

	if !valueobject.IsValidItemWeight(input.Weight) {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeInvalidWeight,
			"initiative weight must be greater than 0 and at most 100",
			domainerror.ErrInvalidWeight,
		)
	}

	objective, err := uc.objectiveRepo.FindByID(ctx, input.ObjectiveID)
	if err != nil {
		if errors.Is(err, domainerror.ErrObjectiveNotFound) {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeObjectiveNotFound,
				"objective not found",
				domainerror.ErrObjectiveNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find objective: %w", err)
	}

	siblings, err := uc.initiativeRepo.FindByObjectiveID(ctx, objective.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list initiatives: %w", err)
	}

	organizationID := input.OrganizationID
	initiative := entity.NewInitiative(objective.ID, name, input.Weight, &organizationID, false)

	// Initiatives under an objective may not exceed its effective weight
	visible := append(visibleInitiatives(siblings, input.OrganizationID), *initiative)
	check := uc.validator.ValidateObjectiveInitiativeWeights(*objective, visible)
	if check.Status == budget.WeightStatusOverTarget {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeWeightShareExceeded,
			fmt.Sprintf("total initiative weight %s exceeds objective weight %s", check.Actual, check.Expected),
			domainerror.ErrWeightShareExceeded,
		)
	}

	if err := uc.initiativeRepo.Create(ctx, initiative); err != nil {
		return nil, fmt.Errorf("failed to create initiative: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return &CreateInitiativeOutput{
		Initiative: initiative,
		Weights:    check,
	}, nil
}
