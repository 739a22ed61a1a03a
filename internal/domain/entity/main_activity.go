package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// MainActivity is a budgeted unit of work under an initiative.
// Its cost comes from its sub-activities or, when it has none, from the legacy budget.
type MainActivity struct {
	ID             uuid.UUID
	InitiativeID   uuid.UUID
	Name           string
	Weight         decimal.Decimal
	Baseline       string
	Targets        valueobject.QuarterTargets
	Period         valueobject.PeriodSelection
	OrganizationID *int64
	IsDefault      bool
	SubActivities  []SubActivity
	LegacyBudget   *ActivityBudget
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewMainActivity creates a new MainActivity entity.
func NewMainActivity(initiativeID uuid.UUID, name string, weight decimal.Decimal, organizationID *int64) *MainActivity {
	now := time.Now().UTC()

	return &MainActivity{
		ID:             uuid.New(),
		InitiativeID:   initiativeID,
		Name:           name,
		Weight:         weight,
		OrganizationID: organizationID,
		Targets:        valueobject.QuarterTargets{Type: valueobject.TargetTypeCumulative},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsVisibleTo reports whether the activity is visible to the given organization.
func (a MainActivity) IsVisibleTo(organizationID int64) bool {
	return IsVisible(a.IsDefault, a.OrganizationID, organizationID)
}

// ActivityBudget is the single cost and funding record attached directly to a main activity.
type ActivityBudget struct {
	ID             uuid.UUID
	MainActivityID uuid.UUID
	Cost           valueobject.CostInput
	Funding        valueobject.FundingBreakdown
	ToolDetails    json.RawMessage // Costing tool output, kept for round-trip only
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SubActivity is a costed, funded leaf item under a main activity.
type SubActivity struct {
	ID             uuid.UUID
	MainActivityID uuid.UUID
	Name           string
	ActivityType   valueobject.ActivityType
	Description    string
	Cost           valueobject.CostInput
	Funding        valueobject.FundingBreakdown
	ToolDetails    json.RawMessage // Costing tool output, kept for round-trip only
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewSubActivity creates a new SubActivity entity.
func NewSubActivity(mainActivityID uuid.UUID, name string, cost valueobject.CostInput, funding valueobject.FundingBreakdown) *SubActivity {
	now := time.Now().UTC()

	return &SubActivity{
		ID:             uuid.New(),
		MainActivityID: mainActivityID,
		Name:           name,
		ActivityType:   cost.ActivityType,
		Cost:           cost,
		Funding:        funding,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
