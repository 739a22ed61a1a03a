package dto

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// PlanSnapshot is a fully materialized objective tree in the ingestion shape.
// It is read by the offline report tool.
type PlanSnapshot struct {
	OrganizationID int64                `json:"organization_id"`
	Organizations  map[string]string    `json:"organizations"`
	Header         ReportHeaderResponse `json:"header"`
	Objectives     []SnapshotObjective  `json:"objectives"`
}

// SnapshotObjective is an objective with its initiatives.
type SnapshotObjective struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Weight        Amount               `json:"weight"`
	PlannerWeight *Amount              `json:"planner_weight"`
	IsDefault     bool                 `json:"is_default"`
	Initiatives   []SnapshotInitiative `json:"initiatives"`
}

// SnapshotInitiative is an initiative with its measures and main activities.
type SnapshotInitiative struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Weight              Amount             `json:"weight"`
	OrganizationID      *int64             `json:"organization_id"`
	OrganizationName    string             `json:"organization_name"`
	IsDefault           bool               `json:"is_default"`
	MainActivities      []SnapshotActivity `json:"main_activities"`
	PerformanceMeasures []SnapshotMeasure  `json:"performance_measures"`
}

// SnapshotActivity is a main activity with its sub-activities and optional legacy budget.
type SnapshotActivity struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Weight         Amount                `json:"weight"`
	OrganizationID *int64                `json:"organization_id"`
	IsDefault      bool                  `json:"is_default"`
	SubActivities  []SnapshotSubActivity `json:"sub_activities"`
	Budget         *BudgetRequest        `json:"budget"`
	TargetsRequest
}

// SnapshotSubActivity is a costed sub-activity.
type SnapshotSubActivity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BudgetRequest
}

// SnapshotMeasure is a performance measure.
type SnapshotMeasure struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Weight         Amount `json:"weight"`
	OrganizationID *int64 `json:"organization_id"`
	IsDefault      bool   `json:"is_default"`
	TargetsRequest
}

// OrganizationLookup resolves organization names from the snapshot directory.
func (s PlanSnapshot) OrganizationLookup(organizationID int64) (string, bool) {
	name, ok := s.Organizations[strconv.FormatInt(organizationID, 10)]
	return name, ok && name != ""
}

// ToObjectives converts the snapshot to domain objectives.
// A snapshot without an objectives list yields nil.
func (s PlanSnapshot) ToObjectives() ([]entity.Objective, error) {
	if s.Objectives == nil {
		return nil, nil
	}

	objectives := make([]entity.Objective, 0, len(s.Objectives))
	for _, so := range s.Objectives {
		id, err := snapshotID(so.ID)
		if err != nil {
			return nil, fmt.Errorf("objective %q: %w", so.Title, err)
		}

		objective := entity.Objective{
			ID:        id,
			Title:     so.Title,
			Weight:    so.Weight.Decimal(),
			IsDefault: so.IsDefault,
		}
		if so.PlannerWeight != nil {
			w := so.PlannerWeight.Decimal()
			objective.PlannerWeight = &w
		}

		for _, si := range so.Initiatives {
			initiative, err := si.toEntity(id)
			if err != nil {
				return nil, fmt.Errorf("objective %q: %w", so.Title, err)
			}
			objective.Initiatives = append(objective.Initiatives, initiative)
		}
		objectives = append(objectives, objective)
	}
	return objectives, nil
}

func (si SnapshotInitiative) toEntity(objectiveID uuid.UUID) (entity.Initiative, error) {
	id, err := snapshotID(si.ID)
	if err != nil {
		return entity.Initiative{}, fmt.Errorf("initiative %q: %w", si.Name, err)
	}

	initiative := entity.Initiative{
		ID:               id,
		ObjectiveID:      objectiveID,
		Name:             si.Name,
		Weight:           si.Weight.Decimal(),
		OrganizationID:   si.OrganizationID,
		OrganizationName: si.OrganizationName,
		IsDefault:        si.IsDefault,
	}

	for _, sm := range si.PerformanceMeasures {
		measureID, err := snapshotID(sm.ID)
		if err != nil {
			return entity.Initiative{}, fmt.Errorf("performance measure %q: %w", sm.Name, err)
		}
		initiative.PerformanceMeasures = append(initiative.PerformanceMeasures, entity.PerformanceMeasure{
			ID:             measureID,
			InitiativeID:   id,
			Name:           sm.Name,
			Weight:         sm.Weight.Decimal(),
			Baseline:       sm.Baseline,
			Targets:        sm.Targets(),
			Period:         sm.Period(),
			OrganizationID: sm.OrganizationID,
			IsDefault:      sm.IsDefault,
		})
	}

	for _, sa := range si.MainActivities {
		activity, err := sa.toEntity(id)
		if err != nil {
			return entity.Initiative{}, err
		}
		initiative.MainActivities = append(initiative.MainActivities, activity)
	}

	return initiative, nil
}

func (sa SnapshotActivity) toEntity(initiativeID uuid.UUID) (entity.MainActivity, error) {
	id, err := snapshotID(sa.ID)
	if err != nil {
		return entity.MainActivity{}, fmt.Errorf("main activity %q: %w", sa.Name, err)
	}

	activity := entity.MainActivity{
		ID:             id,
		InitiativeID:   initiativeID,
		Name:           sa.Name,
		Weight:         sa.Weight.Decimal(),
		Baseline:       sa.Baseline,
		Targets:        sa.Targets(),
		Period:         sa.Period(),
		OrganizationID: sa.OrganizationID,
		IsDefault:      sa.IsDefault,
	}

	for _, ss := range sa.SubActivities {
		subID, err := snapshotID(ss.ID)
		if err != nil {
			return entity.MainActivity{}, fmt.Errorf("sub-activity %q: %w", ss.Name, err)
		}
		input := ss.BudgetRequest.Input()
		if input.Cost.ActivityType == "" {
			input.Cost.ActivityType = valueobject.ActivityTypeOther
		}
		activity.SubActivities = append(activity.SubActivities, entity.SubActivity{
			ID:             subID,
			MainActivityID: id,
			Name:           ss.Name,
			ActivityType:   input.Cost.ActivityType,
			Description:    ss.Description,
			Cost:           input.Cost,
			Funding:        input.Funding.Settled(),
			ToolDetails:    input.ToolDetails,
		})
	}

	if sa.Budget != nil {
		input := sa.Budget.Input()
		activity.LegacyBudget = &entity.ActivityBudget{
			ID:             uuid.New(),
			MainActivityID: id,
			Cost:           input.Cost,
			Funding:        input.Funding.Settled(),
			ToolDetails:    input.ToolDetails,
		}
	}

	return activity, nil
}

func snapshotID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return id, nil
}
