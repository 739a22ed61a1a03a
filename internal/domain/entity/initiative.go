package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Initiative is a strategic initiative under an objective.
// A nil OrganizationID means the initiative applies to every organization.
type Initiative struct {
	ID                  uuid.UUID
	ObjectiveID         uuid.UUID
	Name                string
	Weight              decimal.Decimal
	OrganizationID      *int64
	OrganizationName    string
	IsDefault           bool
	MainActivities      []MainActivity
	PerformanceMeasures []PerformanceMeasure
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewInitiative creates a new Initiative entity.
func NewInitiative(objectiveID uuid.UUID, name string, weight decimal.Decimal, organizationID *int64, isDefault bool) *Initiative {
	now := time.Now().UTC()

	return &Initiative{
		ID:             uuid.New(),
		ObjectiveID:    objectiveID,
		Name:           name,
		Weight:         weight,
		OrganizationID: organizationID,
		IsDefault:      isDefault,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsVisibleTo reports whether the initiative is visible to the given organization.
func (i Initiative) IsVisibleTo(organizationID int64) bool {
	return IsVisible(i.IsDefault, i.OrganizationID, organizationID)
}

// IsVisible applies the organization visibility rule shared by initiatives, activities and measures:
// default items and items without an organization are visible to everyone.
func IsVisible(isDefault bool, owner *int64, organizationID int64) bool {
	return isDefault || owner == nil || *owner == organizationID
}
