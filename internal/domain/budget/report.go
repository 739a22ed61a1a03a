package budget

// ReportHeader identifies the plan a report was produced for.
type ReportHeader struct {
	Organization string
	Planner      string
	PlanType     string
	FromDate     string
	ToDate       string
}

// Report is a header plus the stepped rows of a plan.
type Report struct {
	Header ReportHeader
	Rows   []ReportRow
}

// Summary returns the final summary row, or false when the report has no rows.
func (r Report) Summary() (ReportRow, bool) {
	if len(r.Rows) == 0 {
		return ReportRow{}, false
	}
	last := r.Rows[len(r.Rows)-1]
	return last, last.ItemType == ItemTypeSummary
}

// Build projects the tree under the given header.
func (p *Projector) Build(header ReportHeader, tree *Tree) Report {
	return Report{
		Header: header,
		Rows:   p.Project(tree),
	}
}
