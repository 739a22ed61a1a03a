// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Objective is a top-level strategic objective weighted as a share of the whole plan.
type Objective struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Weight        decimal.Decimal
	PlannerWeight *decimal.Decimal // Optional override set by the planner
	IsDefault     bool
	Initiatives   []Initiative
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewObjective creates a new Objective entity.
func NewObjective(title, description string, weight decimal.Decimal, isDefault bool) *Objective {
	now := time.Now().UTC()

	return &Objective{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Weight:      weight,
		IsDefault:   isDefault,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EffectiveWeight returns the planner override when set, else the base weight.
func (o Objective) EffectiveWeight() decimal.Decimal {
	if o.PlannerWeight != nil {
		return *o.PlannerWeight
	}
	return o.Weight
}
