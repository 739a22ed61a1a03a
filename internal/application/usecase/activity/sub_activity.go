package activity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
)

// SubActivityInput holds the fields of a sub-activity on create and update.
type SubActivityInput struct {
	Name        string
	Description string
	Budget      BudgetInput
}

// SubActivityOutput represents a stored sub-activity with its computed budget.
type SubActivityOutput struct {
	SubActivity *entity.SubActivity
	Summary     budget.Summary
}

func validateSubActivity(input SubActivityInput) (SubActivityInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, domainerror.NewPlanningError(
			domainerror.ErrCodeMissingPlanningFields,
			"sub-activity name is required",
			nil,
		)
	}

	normalized, err := normalizeBudget(input.Budget, true)
	if err != nil {
		return input, err
	}
	input.Budget = normalized

	return input, nil
}

// findVisibleSubActivity loads a sub-activity whose main activity is visible to the organization.
func findVisibleSubActivity(
	ctx context.Context,
	subRepo adapter.SubActivityRepository,
	activityRepo adapter.MainActivityRepository,
	id uuid.UUID,
	organizationID int64,
) (*entity.SubActivity, error) {
	notFound := domainerror.NewPlanningError(
		domainerror.ErrCodeSubActivityNotFound,
		"sub-activity not found",
		domainerror.ErrSubActivityNotFound,
	)

	sub, err := subRepo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, domainerror.ErrSubActivityNotFound) {
		return nil, fmt.Errorf("failed to find sub-activity: %w", err)
	}
	if sub == nil {
		return nil, notFound
	}

	if _, err := findVisibleActivity(ctx, activityRepo, sub.MainActivityID, organizationID); err != nil {
		var planningErr *domainerror.PlanningError
		if errors.As(err, &planningErr) {
			return nil, notFound
		}
		return nil, err
	}

	return sub, nil
}

// CreateSubActivityInput represents the input for sub-activity creation.
type CreateSubActivityInput struct {
	MainActivityID uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
	SubActivity    SubActivityInput
}

// CreateSubActivityUseCase handles sub-activity creation logic.
type CreateSubActivityUseCase struct {
	activityRepo adapter.MainActivityRepository
	subRepo      adapter.SubActivityRepository
	cache        adapter.SummaryCache
}

// NewCreateSubActivityUseCase creates a new CreateSubActivityUseCase instance.
func NewCreateSubActivityUseCase(
	activityRepo adapter.MainActivityRepository,
	subRepo adapter.SubActivityRepository,
	cache adapter.SummaryCache,
) *CreateSubActivityUseCase {
	return &CreateSubActivityUseCase{
		activityRepo: activityRepo,
		subRepo:      subRepo,
		cache:        cache,
	}
}

// Execute adds a costed sub-activity under a main activity.
func (uc *CreateSubActivityUseCase) Execute(ctx context.Context, input CreateSubActivityInput) (*SubActivityOutput, error) {
	if err := requirePlanner(input.Role); err != nil {
		return nil, err
	}

	fields, err := validateSubActivity(input.SubActivity)
	if err != nil {
		return nil, err
	}

	activity, err := findVisibleActivity(ctx, uc.activityRepo, input.MainActivityID, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	sub := entity.NewSubActivity(activity.ID, fields.Name, fields.Budget.Cost, fields.Budget.Funding)
	sub.Description = fields.Description
	sub.ToolDetails = fields.Budget.ToolDetails

	if err := uc.subRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create sub-activity: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return &SubActivityOutput{
		SubActivity: sub,
		Summary:     budget.ComputeSubActivityBudget(*sub),
	}, nil
}

// UpdateSubActivityInput represents the input for updating a sub-activity.
type UpdateSubActivityInput struct {
	SubActivityID  uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
	SubActivity    SubActivityInput
}

// UpdateSubActivityUseCase handles sub-activity updates.
type UpdateSubActivityUseCase struct {
	activityRepo adapter.MainActivityRepository
	subRepo      adapter.SubActivityRepository
	cache        adapter.SummaryCache
}

// NewUpdateSubActivityUseCase creates a new UpdateSubActivityUseCase instance.
func NewUpdateSubActivityUseCase(
	activityRepo adapter.MainActivityRepository,
	subRepo adapter.SubActivityRepository,
	cache adapter.SummaryCache,
) *UpdateSubActivityUseCase {
	return &UpdateSubActivityUseCase{
		activityRepo: activityRepo,
		subRepo:      subRepo,
		cache:        cache,
	}
}

// Execute replaces the cost, funding and descriptive fields of a sub-activity.
func (uc *UpdateSubActivityUseCase) Execute(ctx context.Context, input UpdateSubActivityInput) (*SubActivityOutput, error) {
	if err := requirePlanner(input.Role); err != nil {
		return nil, err
	}

	fields, err := validateSubActivity(input.SubActivity)
	if err != nil {
		return nil, err
	}

	sub, err := findVisibleSubActivity(ctx, uc.subRepo, uc.activityRepo, input.SubActivityID, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	sub.Name = fields.Name
	sub.Description = fields.Description
	sub.ActivityType = fields.Budget.Cost.ActivityType
	sub.Cost = fields.Budget.Cost
	sub.Funding = fields.Budget.Funding
	sub.ToolDetails = fields.Budget.ToolDetails
	sub.UpdatedAt = time.Now().UTC()

	if err := uc.subRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update sub-activity: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return &SubActivityOutput{
		SubActivity: sub,
		Summary:     budget.ComputeSubActivityBudget(*sub),
	}, nil
}

// DeleteSubActivityInput represents the input for sub-activity deletion.
type DeleteSubActivityInput struct {
	SubActivityID  uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
}

// DeleteSubActivityUseCase handles sub-activity deletion logic.
type DeleteSubActivityUseCase struct {
	activityRepo adapter.MainActivityRepository
	subRepo      adapter.SubActivityRepository
	cache        adapter.SummaryCache
}

// NewDeleteSubActivityUseCase creates a new DeleteSubActivityUseCase instance.
func NewDeleteSubActivityUseCase(
	activityRepo adapter.MainActivityRepository,
	subRepo adapter.SubActivityRepository,
	cache adapter.SummaryCache,
) *DeleteSubActivityUseCase {
	return &DeleteSubActivityUseCase{
		activityRepo: activityRepo,
		subRepo:      subRepo,
		cache:        cache,
	}
}

// Execute deletes a sub-activity.
func (uc *DeleteSubActivityUseCase) Execute(ctx context.Context, input DeleteSubActivityInput) error {
	if err := requirePlanner(input.Role); err != nil {
		return err
	}

	sub, err := findVisibleSubActivity(ctx, uc.subRepo, uc.activityRepo, input.SubActivityID, input.OrganizationID)
	if err != nil {
		return err
	}

	if err := uc.subRepo.Delete(ctx, sub.ID); err != nil {
		return fmt.Errorf("failed to delete sub-activity: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return nil
}
