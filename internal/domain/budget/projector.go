package budget

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// ItemType identifies what a report row stands for.
type ItemType string

const (
	ItemTypePerformanceMeasure ItemType = "PerformanceMeasure"
	ItemTypeMainActivity       ItemType = "MainActivity"
	ItemTypeInitiative         ItemType = "Initiative"
	ItemTypeObjective          ItemType = "Objective"
	ItemTypeSummary            ItemType = "Summary"
)

const (
	placeholder          = "-"
	untitledObjective    = "Untitled Objective"
	untitledInitiative   = "Untitled Initiative"
	emptyInitiativeLabel = "No measures or activities"
	summaryLabel         = "Total"
)

// ReportRow is one line of the stepped plan report.
// Objective and initiative columns are blank after the first row of their group.
type ReportRow struct {
	Number           string
	ObjectiveTitle   string
	ObjectiveWeight  string
	InitiativeName   string
	InitiativeWeight string
	ItemType         ItemType
	ItemName         string
	ItemWeight       string
	Baseline         string
	Q1Target         string
	Q1Months         string
	Q2Target         string
	Q2Months         string
	SixMonthTarget   string
	Q3Target         string
	Q3Months         string
	Q4Target         string
	Q4Months         string
	AnnualTarget     string
	Implementor      string
	HasBudget        bool // False for measure and placeholder rows
	Budget           Summary
}

// OrganizationLookup resolves an organization id to its display name.
type OrganizationLookup func(organizationID int64) (string, bool)

// Projector flattens an aggregated tree into report rows.
type Projector struct {
	lookup             OrganizationLookup
	defaultImplementor string
}

// NewProjector creates a projector. A nil lookup resolves nothing.
func NewProjector(lookup OrganizationLookup, defaultImplementor string) *Projector {
	if lookup == nil {
		lookup = func(int64) (string, bool) { return "", false }
	}
	if defaultImplementor == "" {
		defaultImplementor = valueobject.DefaultImplementorName
	}
	return &Projector{lookup: lookup, defaultImplementor: defaultImplementor}
}

// Project returns one row per measure and activity, placeholders for empty
// initiatives and objectives, and a final summary row with the budget totals of all rows.
func (p *Projector) Project(tree *Tree) []ReportRow {
	var rows []ReportRow
	if tree != nil {
		for i, objective := range tree.Objectives {
			rows = append(rows, p.projectObjective(i+1, objective)...)
		}
	}

	total := ZeroSummary()
	for _, row := range rows {
		if row.HasBudget {
			total = total.Add(row.Budget)
		}
	}

	return append(rows, ReportRow{
		ItemType:  ItemTypeSummary,
		ItemName:  summaryLabel,
		HasBudget: true,
		Budget:    total,
	})
}

func (p *Projector) projectObjective(number int, objective ObjectiveNode) []ReportRow {
	title := objective.Title
	if title == "" {
		title = untitledObjective
	}
	header := ReportRow{
		Number:          strconv.Itoa(number),
		ObjectiveTitle:  title,
		ObjectiveWeight: objective.EffectiveWeight.StringFixed(1) + "%",
	}

	if len(objective.Initiatives) == 0 {
		row := placeholderRow(header, ItemTypeObjective, placeholder)
		row.InitiativeName = placeholder
		row.InitiativeWeight = placeholder
		row.Implementor = p.defaultImplementor
		return []ReportRow{row}
	}

	var rows []ReportRow
	for _, initiative := range objective.Initiatives {
		group := header
		if len(rows) > 0 {
			group = ReportRow{}
		}
		rows = append(rows, p.projectInitiative(group, initiative)...)
	}
	return rows
}

func (p *Projector) projectInitiative(group ReportRow, initiative InitiativeNode) []ReportRow {
	name := initiative.Name
	if name == "" {
		name = untitledInitiative
	}
	group.InitiativeName = name
	group.InitiativeWeight = percent(initiative.Weight)

	if len(initiative.Measures) == 0 && len(initiative.Activities) == 0 {
		row := placeholderRow(group, ItemTypeInitiative, emptyInitiativeLabel)
		row.Implementor = p.implementor(initiative, nil)
		return []ReportRow{row}
	}

	rows := make([]ReportRow, 0, len(initiative.Measures)+len(initiative.Activities))
	next := func() ReportRow {
		if len(rows) == 0 {
			return group
		}
		return ReportRow{}
	}

	for _, m := range initiative.Measures {
		row := next()
		row.ItemType = ItemTypePerformanceMeasure
		row.ItemName = "PM: " + m.Name
		row.ItemWeight = percent(m.Weight)
		fillTargets(&row, m.Baseline, m.Targets, m.Period)
		row.Implementor = p.implementor(initiative, m.OrganizationID)
		rows = append(rows, row)
	}

	for _, a := range initiative.Activities {
		row := next()
		row.ItemType = ItemTypeMainActivity
		row.ItemName = "MA: " + a.Name
		row.ItemWeight = percent(a.Weight)
		fillTargets(&row, a.Baseline, a.Targets, a.Period)
		row.Implementor = p.implementor(initiative, a.OrganizationID)
		row.HasBudget = true
		row.Budget = a.Budget
		rows = append(rows, row)
	}

	return rows
}

func (p *Projector) implementor(initiative InitiativeNode, itemOrganizationID *int64) string {
	if initiative.OrganizationName != "" {
		return initiative.OrganizationName
	}
	for _, id := range []*int64{initiative.OrganizationID, itemOrganizationID} {
		if id == nil {
			continue
		}
		if name, ok := p.lookup(*id); ok && name != "" {
			return name
		}
	}
	return p.defaultImplementor
}

func placeholderRow(base ReportRow, itemType ItemType, itemName string) ReportRow {
	row := base
	row.ItemType = itemType
	row.ItemName = itemName
	row.ItemWeight = placeholder
	row.Baseline = placeholder
	row.Q1Target, row.Q1Months = placeholder, placeholder
	row.Q2Target, row.Q2Months = placeholder, placeholder
	row.SixMonthTarget = placeholder
	row.Q3Target, row.Q3Months = placeholder, placeholder
	row.Q4Target, row.Q4Months = placeholder, placeholder
	row.AnnualTarget = placeholder
	row.Budget = ZeroSummary()
	return row
}

func fillTargets(row *ReportRow, baseline string, targets valueobject.QuarterTargets, period valueobject.PeriodSelection) {
	row.Baseline = baseline
	if row.Baseline == "" {
		row.Baseline = placeholder
	}
	row.Q1Target = targets.Q1.String()
	row.Q1Months = period.MonthsLabel(valueobject.Q1)
	row.Q2Target = targets.Q2.String()
	row.Q2Months = period.MonthsLabel(valueobject.Q2)
	row.SixMonthTarget = targets.SixMonthTarget().String()
	row.Q3Target = targets.Q3.String()
	row.Q3Months = period.MonthsLabel(valueobject.Q3)
	row.Q4Target = targets.Q4.String()
	row.Q4Months = period.MonthsLabel(valueobject.Q4)
	row.AnnualTarget = targets.Annual.String()
}

func percent(d decimal.Decimal) string {
	return d.String() + "%"
}
