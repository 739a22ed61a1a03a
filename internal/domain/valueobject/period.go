package valueobject

import "strings"

// Quarter is a fiscal quarter label.
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// Quarters lists the fiscal quarters in order.
func Quarters() []Quarter {
	return []Quarter{Q1, Q2, Q3, Q4}
}

// Month is a three-letter upper-case month label.
type Month string

// The fiscal year runs July to June.
var quarterMonths = map[Quarter][]Month{
	Q1: {"JUL", "AUG", "SEP"},
	Q2: {"OCT", "NOV", "DEC"},
	Q3: {"JAN", "FEB", "MAR"},
	Q4: {"APR", "MAY", "JUN"},
}

// Months returns the months of the quarter in calendar order.
func (q Quarter) Months() []Month {
	months := quarterMonths[q]
	out := make([]Month, len(months))
	copy(out, months)
	return out
}

// IsValid reports whether the quarter is known.
func (q Quarter) IsValid() bool {
	_, ok := quarterMonths[q]
	return ok
}

// IsValid reports whether the month belongs to a fiscal quarter.
func (m Month) IsValid() bool {
	for _, q := range Quarters() {
		for _, known := range quarterMonths[q] {
			if strings.EqualFold(string(m), string(known)) {
				return true
			}
		}
	}
	return false
}

// PeriodSelection records the months and quarters a plan item is scheduled in.
type PeriodSelection struct {
	Months   []Month
	Quarters []Quarter
}

// IsEmpty reports whether neither a month nor a quarter is selected.
func (p PeriodSelection) IsEmpty() bool {
	return len(p.Months) == 0 && len(p.Quarters) == 0
}

// Clone returns a deep copy of the selection.
func (p PeriodSelection) Clone() PeriodSelection {
	var out PeriodSelection
	if p.Months != nil {
		out.Months = append([]Month(nil), p.Months...)
	}
	if p.Quarters != nil {
		out.Quarters = append([]Quarter(nil), p.Quarters...)
	}
	return out
}

// MonthsLabel lists the scheduled months of a quarter as "JUL, AUG".
// A selected quarter lists all its months; otherwise only the selected months inside it; "-" when none.
func (p PeriodSelection) MonthsLabel(q Quarter) string {
	for _, selected := range p.Quarters {
		if selected == q {
			return joinMonths(quarterMonths[q])
		}
	}

	var picked []Month
	for _, m := range quarterMonths[q] {
		for _, selected := range p.Months {
			if strings.EqualFold(string(selected), string(m)) {
				picked = append(picked, m)
				break
			}
		}
	}
	if len(picked) == 0 {
		return "-"
	}
	return joinMonths(picked)
}

func joinMonths(months []Month) string {
	parts := make([]string, len(months))
	for i, m := range months {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}
