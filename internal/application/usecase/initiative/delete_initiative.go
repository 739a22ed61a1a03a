package initiative

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
)

// DeleteInitiativeInput represents the input for initiative deletion.
type DeleteInitiativeInput struct {
	InitiativeID   uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
}

// DeleteInitiativeUseCase handles initiative deletion logic.
type DeleteInitiativeUseCase struct {
	initiativeRepo adapter.InitiativeRepository
	cache          adapter.SummaryCache
}

// NewDeleteInitiativeUseCase creates a new DeleteInitiativeUseCase instance.
func NewDeleteInitiativeUseCase(initiativeRepo adapter.InitiativeRepository, cache adapter.SummaryCache) *DeleteInitiativeUseCase {
	return &DeleteInitiativeUseCase{
		initiativeRepo: initiativeRepo,
		cache:          cache,
	}
}

// Execute deletes an initiative owned by the caller's organization, cascading to its children.
func (uc *DeleteInitiativeUseCase) Execute(ctx context.Context, input DeleteInitiativeInput) error {
	if !input.Role.CanEditPlans() {
		return domainerror.NewAuthError(
			domainerror.ErrCodeForbiddenRole,
			"only planners can delete initiatives",
			domainerror.ErrForbiddenRole,
		)
	}

	initiative, err := findVisibleInitiative(ctx, uc.initiativeRepo, input.InitiativeID, input.OrganizationID)
	if err != nil {
		return err
	}

	if initiative.IsDefault {
		return domainerror.NewPlanningError(
			domainerror.ErrCodeDefaultItemReadOnly,
			"default initiatives cannot be deleted",
			domainerror.ErrDefaultItemReadOnly,
		)
	}

	if initiative.OrganizationID == nil || *initiative.OrganizationID != input.OrganizationID {
		return domainerror.NewPlanningError(
			domainerror.ErrCodeForeignOrganization,
			"initiative belongs to another organization",
			domainerror.ErrForeignOrganization,
		)
	}

	if err := uc.initiativeRepo.Delete(ctx, initiative.ID); err != nil {
		return fmt.Errorf("failed to delete initiative: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return nil
}
