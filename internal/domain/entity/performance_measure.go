package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// PerformanceMeasure is a weighted indicator tracked under an initiative. It carries no budget.
type PerformanceMeasure struct {
	ID             uuid.UUID
	InitiativeID   uuid.UUID
	Name           string
	Weight         decimal.Decimal
	Baseline       string
	Targets        valueobject.QuarterTargets
	Period         valueobject.PeriodSelection
	OrganizationID *int64
	IsDefault      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPerformanceMeasure creates a new PerformanceMeasure entity.
func NewPerformanceMeasure(initiativeID uuid.UUID, name string, weight decimal.Decimal, organizationID *int64) *PerformanceMeasure {
	now := time.Now().UTC()

	return &PerformanceMeasure{
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

// IsVisibleTo reports whether the measure is visible to the given organization.
func (m PerformanceMeasure) IsVisibleTo(organizationID int64) bool {
	return IsVisible(m.IsDefault, m.OrganizationID, organizationID)
}
