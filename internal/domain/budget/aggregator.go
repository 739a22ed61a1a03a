package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// Tree is the aggregated, organization-filtered view of a plan hierarchy.
type Tree struct {
	OrganizationID int64
	Objectives     []ObjectiveNode
	GrandTotal     Summary
}

// ObjectiveNode is an aggregated objective.
type ObjectiveNode struct {
	ID                uuid.UUID
	Title             string
	Weight            decimal.Decimal
	PlannerWeight     *decimal.Decimal
	EffectiveWeight   decimal.Decimal
	Initiatives       []InitiativeNode
	Totals            Summary
	ActivityWeights   WeightCheckResult
	InitiativeWeights WeightCheckResult
}

// InitiativeNode is an aggregated initiative.
type InitiativeNode struct {
	ID               uuid.UUID
	Name             string
	Weight           decimal.Decimal
	OrganizationID   *int64
	OrganizationName string
	IsDefault        bool
	Measures         []MeasureNode
	Activities       []ActivityNode
	Totals           Summary
	ActivityWeights  WeightCheckResult
	MeasureWeights   WeightCheckResult
}

// ActivityNode is an aggregated main activity.
type ActivityNode struct {
	ID             uuid.UUID
	Name           string
	Weight         decimal.Decimal
	Baseline       string
	Targets        valueobject.QuarterTargets
	Period         valueobject.PeriodSelection
	OrganizationID *int64
	SubActivities  []SubActivityNode
	Budget         Summary
	FundingStatus  FundingStatus
}

// SubActivityNode is a sub-activity with its own budget summary.
type SubActivityNode struct {
	ID           uuid.UUID
	Name         string
	ActivityType valueobject.ActivityType
	Mode         valueobject.CalculationMode
	Budget       Summary
}

// MeasureNode is a visible performance measure.
type MeasureNode struct {
	ID             uuid.UUID
	Name           string
	Weight         decimal.Decimal
	Baseline       string
	Targets        valueobject.QuarterTargets
	Period         valueobject.PeriodSelection
	OrganizationID *int64
}

// Aggregator rolls budgets up the Objective → Initiative → Activity hierarchy.
type Aggregator struct {
	validator WeightValidator
}

// NewAggregator creates an aggregator applying the given planning rules.
func NewAggregator(rules valueobject.PlanningRules) *Aggregator {
	return &Aggregator{validator: NewWeightValidator(rules)}
}

// Validator returns the weight validator used by the aggregator.
func (a *Aggregator) Validator() WeightValidator {
	return a.validator
}

// Aggregate builds the aggregated tree visible to an organization.
// Hidden items are dropped before any summation. The input is never modified.
// A nil objectives slice is a caller error and returns ErrInvalidInput.
func (a *Aggregator) Aggregate(objectives []entity.Objective, organizationID int64) (*Tree, error) {
	if objectives == nil {
		return nil, domainerror.ErrInvalidInput
	}

	tree := &Tree{
		OrganizationID: organizationID,
		Objectives:     make([]ObjectiveNode, 0, len(objectives)),
		GrandTotal:     ZeroSummary(),
	}

	for _, objective := range objectives {
		node := a.aggregateObjective(objective, organizationID)
		tree.GrandTotal = tree.GrandTotal.Add(node.Totals)
		tree.Objectives = append(tree.Objectives, node)
	}

	return tree, nil
}

func (a *Aggregator) aggregateObjective(objective entity.Objective, organizationID int64) ObjectiveNode {
	node := ObjectiveNode{
		ID:              objective.ID,
		Title:           objective.Title,
		Weight:          objective.Weight,
		PlannerWeight:   copyDecimal(objective.PlannerWeight),
		EffectiveWeight: objective.EffectiveWeight(),
		Initiatives:     make([]InitiativeNode, 0, len(objective.Initiatives)),
		Totals:          ZeroSummary(),
	}

	var visibleInitiatives []entity.Initiative
	var objectiveActivities []entity.MainActivity

	for _, initiative := range objective.Initiatives {
		if !initiative.IsVisibleTo(organizationID) {
			continue
		}
		visibleInitiatives = append(visibleInitiatives, initiative)

		child, activities := a.aggregateInitiative(initiative, organizationID)
		objectiveActivities = append(objectiveActivities, activities...)
		node.Totals = node.Totals.Add(child.Totals)
		node.Initiatives = append(node.Initiatives, child)
	}

	node.ActivityWeights = a.validator.ValidateObjectiveActivityWeights(objective, objectiveActivities)
	node.InitiativeWeights = a.validator.ValidateObjectiveInitiativeWeights(objective, visibleInitiatives)

	return node
}

// aggregateInitiative returns the initiative node and the visible activities it was built from.
func (a *Aggregator) aggregateInitiative(initiative entity.Initiative, organizationID int64) (InitiativeNode, []entity.MainActivity) {
	node := InitiativeNode{
		ID:               initiative.ID,
		Name:             initiative.Name,
		Weight:           initiative.Weight,
		OrganizationID:   copyID(initiative.OrganizationID),
		OrganizationName: initiative.OrganizationName,
		IsDefault:        initiative.IsDefault,
		Measures:         make([]MeasureNode, 0, len(initiative.PerformanceMeasures)),
		Activities:       make([]ActivityNode, 0, len(initiative.MainActivities)),
		Totals:           ZeroSummary(),
	}

	var visibleMeasures []entity.PerformanceMeasure
	for _, m := range initiative.PerformanceMeasures {
		if !m.IsVisibleTo(organizationID) {
			continue
		}
		visibleMeasures = append(visibleMeasures, m)
		node.Measures = append(node.Measures, MeasureNode{
			ID:             m.ID,
			Name:           m.Name,
			Weight:         m.Weight,
			Baseline:       m.Baseline,
			Targets:        m.Targets,
			Period:         m.Period.Clone(),
			OrganizationID: copyID(m.OrganizationID),
		})
	}

	var visibleActivities []entity.MainActivity
	for _, activity := range initiative.MainActivities {
		if !activity.IsVisibleTo(organizationID) {
			continue
		}
		visibleActivities = append(visibleActivities, activity)

		child := aggregateActivity(activity)
		node.Totals = node.Totals.Add(child.Budget)
		node.Activities = append(node.Activities, child)
	}

	node.ActivityWeights = a.validator.ValidateInitiativeActivityWeights(initiative, visibleActivities)
	node.MeasureWeights = a.validator.ValidateInitiativeMeasureWeights(initiative, visibleMeasures)

	return node, visibleActivities
}

func aggregateActivity(activity entity.MainActivity) ActivityNode {
	summary := ComputeActivityBudget(activity)

	subs := make([]SubActivityNode, len(activity.SubActivities))
	for i, sub := range activity.SubActivities {
		subs[i] = SubActivityNode{
			ID:           sub.ID,
			Name:         sub.Name,
			ActivityType: sub.ActivityType,
			Mode:         sub.Cost.Mode,
			Budget:       ComputeSubActivityBudget(sub),
		}
	}

	return ActivityNode{
		ID:             activity.ID,
		Name:           activity.Name,
		Weight:         activity.Weight,
		Baseline:       activity.Baseline,
		Targets:        activity.Targets,
		Period:         activity.Period.Clone(),
		OrganizationID: copyID(activity.OrganizationID),
		SubActivities:  subs,
		Budget:         summary,
		FundingStatus:  summary.Status(),
	}
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

// Weight check levels reported by OverTargetLevels.
const (
	LevelObjectiveInitiatives = "objective_initiatives"
	LevelObjectiveActivities  = "objective_activities"
	LevelInitiativeActivities = "initiative_activities"
	LevelInitiativeMeasures   = "initiative_measures"
)

// OverTargetLevels lists one level name per weight check in the tree that is over target.
func (t *Tree) OverTargetLevels() []string {
	if t == nil {
		return nil
	}

	var levels []string
	for _, objective := range t.Objectives {
		if objective.InitiativeWeights.Status == WeightStatusOverTarget {
			levels = append(levels, LevelObjectiveInitiatives)
		}
		if objective.ActivityWeights.Status == WeightStatusOverTarget {
			levels = append(levels, LevelObjectiveActivities)
		}
		for _, initiative := range objective.Initiatives {
			if initiative.ActivityWeights.Status == WeightStatusOverTarget {
				levels = append(levels, LevelInitiativeActivities)
			}
			if initiative.MeasureWeights.Status == WeightStatusOverTarget {
				levels = append(levels, LevelInitiativeMeasures)
			}
		}
	}
	return levels
}
