package model

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// PlanItemColumns holds the target and period columns shared by main activities and performance measures.
type PlanItemColumns struct {
	Baseline         string          `gorm:"type:varchar(255)"`
	TargetType       string          `gorm:"type:varchar(20);not null;default:'cumulative'"`
	Q1Target         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Q2Target         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Q3Target         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Q4Target         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	AnnualTarget     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SelectedMonths   []string        `gorm:"type:jsonb;serializer:json"`
	SelectedQuarters []string        `gorm:"type:jsonb;serializer:json"`
}

func planItemColumns(baseline string, targets valueobject.QuarterTargets, period valueobject.PeriodSelection) PlanItemColumns {
	months := make([]string, len(period.Months))
	for i, m := range period.Months {
		months[i] = string(m)
	}
	quarters := make([]string, len(period.Quarters))
	for i, q := range period.Quarters {
		quarters[i] = string(q)
	}

	return PlanItemColumns{
		Baseline:         baseline,
		TargetType:       string(targets.Type),
		Q1Target:         targets.Q1,
		Q2Target:         targets.Q2,
		Q3Target:         targets.Q3,
		Q4Target:         targets.Q4,
		AnnualTarget:     targets.Annual,
		SelectedMonths:   months,
		SelectedQuarters: quarters,
	}
}

func (c PlanItemColumns) targets() valueobject.QuarterTargets {
	return valueobject.QuarterTargets{
		Type:   valueobject.TargetType(c.TargetType),
		Q1:     c.Q1Target,
		Q2:     c.Q2Target,
		Q3:     c.Q3Target,
		Q4:     c.Q4Target,
		Annual: c.AnnualTarget,
	}
}

func (c PlanItemColumns) period() valueobject.PeriodSelection {
	var period valueobject.PeriodSelection
	for _, m := range c.SelectedMonths {
		period.Months = append(period.Months, valueobject.Month(m))
	}
	for _, q := range c.SelectedQuarters {
		period.Quarters = append(period.Quarters, valueobject.Quarter(q))
	}
	return period
}

// PartnerColumn is one entry of the partners_list column.
type PartnerColumn struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// BudgetColumns holds the cost and funding columns shared by activity budgets and sub-activities.
type BudgetColumns struct {
	BudgetCalculationType    string          `gorm:"type:varchar(20);not null;default:'WITHOUT_TOOL'"`
	ActivityType             string          `gorm:"type:varchar(20);not null;default:'Other'"`
	EstimatedCostWithTool    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	EstimatedCostWithoutTool decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	GovernmentTreasury       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SDGFunding               decimal.Decimal `gorm:"column:sdg_funding;type:decimal(15,2);not null;default:0"`
	PartnersFunding          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	OtherFunding             decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PartnersList             []PartnerColumn `gorm:"type:jsonb;serializer:json"`
	ToolDetails              json.RawMessage `gorm:"type:jsonb;serializer:json"`
}

func budgetColumns(cost valueobject.CostInput, funding valueobject.FundingBreakdown, toolDetails json.RawMessage) BudgetColumns {
	partners := make([]PartnerColumn, len(funding.PartnersList))
	for i, p := range funding.PartnersList {
		partners[i] = PartnerColumn{Name: p.Name, Amount: p.Amount}
	}

	return BudgetColumns{
		BudgetCalculationType:    string(cost.Mode),
		ActivityType:             string(cost.ActivityType),
		EstimatedCostWithTool:    cost.CostWithTool,
		EstimatedCostWithoutTool: cost.CostWithoutTool,
		GovernmentTreasury:       funding.Government,
		SDGFunding:               funding.SDG,
		PartnersFunding:          funding.Partners,
		OtherFunding:             funding.Other,
		PartnersList:             partners,
		ToolDetails:              toolDetails,
	}
}

func (c BudgetColumns) cost() valueobject.CostInput {
	return valueobject.NewCostInput(
		valueobject.CalculationMode(c.BudgetCalculationType),
		valueobject.ActivityType(c.ActivityType),
		c.EstimatedCostWithTool,
		c.EstimatedCostWithoutTool,
	)
}

func (c BudgetColumns) funding() valueobject.FundingBreakdown {
	partners := make([]valueobject.PartnerContribution, len(c.PartnersList))
	for i, p := range c.PartnersList {
		partners[i] = valueobject.PartnerContribution{Name: p.Name, Amount: p.Amount}
	}
	return valueobject.NewFundingBreakdown(c.GovernmentTreasury, c.SDGFunding, c.PartnersFunding, c.OtherFunding, partners)
}

func (c BudgetColumns) toolDetails() json.RawMessage {
	if len(c.ToolDetails) == 0 || bytes.Equal(c.ToolDetails, []byte("null")) {
		return nil
	}
	return c.ToolDetails
}
