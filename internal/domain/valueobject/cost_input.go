package valueobject

import "github.com/shopspring/decimal"

// CalculationMode selects which of the two recorded cost figures is active.
type CalculationMode string

const (
	CalculationModeWithTool    CalculationMode = "WITH_TOOL"
	CalculationModeWithoutTool CalculationMode = "WITHOUT_TOOL"
)

// IsValid reports whether the mode is one of the known calculation modes.
func (m CalculationMode) IsValid() bool {
	return m == CalculationModeWithTool || m == CalculationModeWithoutTool
}

// ActivityType identifies the costing tool that produced a cost figure.
type ActivityType string

const (
	ActivityTypeTraining    ActivityType = "Training"
	ActivityTypeMeeting     ActivityType = "Meeting"
	ActivityTypeWorkshop    ActivityType = "Workshop"
	ActivityTypePrinting    ActivityType = "Printing"
	ActivityTypeProcurement ActivityType = "Procurement"
	ActivityTypeSupervision ActivityType = "Supervision"
	ActivityTypeOther       ActivityType = "Other"
)

// ActivityTypes lists every supported activity type in display order.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityTypeTraining,
		ActivityTypeMeeting,
		ActivityTypeWorkshop,
		ActivityTypePrinting,
		ActivityTypeProcurement,
		ActivityTypeSupervision,
		ActivityTypeOther,
	}
}

// IsValid reports whether the activity type is supported.
func (t ActivityType) IsValid() bool {
	for _, known := range ActivityTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// CostInput is the normalized cost figure handed over by a costing tool or a manual entry.
// Both figures are kept for round-trip; only the one selected by Mode is active.
type CostInput struct {
	Mode            CalculationMode
	CostWithTool    decimal.Decimal
	CostWithoutTool decimal.Decimal
	ActivityType    ActivityType
}

// NewCostInput builds a CostInput, clamping both figures to non-negative values.
func NewCostInput(mode CalculationMode, activityType ActivityType, costWithTool, costWithoutTool any) CostInput {
	return CostInput{
		Mode:            mode,
		CostWithTool:    CoerceNonNegativeDecimal(costWithTool),
		CostWithoutTool: CoerceNonNegativeDecimal(costWithoutTool),
		ActivityType:    activityType,
	}
}

// ActiveCost returns the cost selected by the calculation mode.
// Any mode other than WITH_TOOL resolves to the manual figure.
func (c CostInput) ActiveCost() decimal.Decimal {
	if c.Mode == CalculationModeWithTool {
		return nonNegative(c.CostWithTool)
	}
	return nonNegative(c.CostWithoutTool)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
