// Package export renders plan reports into downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
)

// Columns lists the report columns in file order.
var Columns = []string{
	"No.",
	"Strategic Objective",
	"Strategic Objective Weight",
	"Strategic Initiative",
	"Initiative Weight",
	"Performance Measure/Main Activity",
	"Weight",
	"Baseline",
	"Q1 Target",
	"Q1 Months",
	"Q2 Target",
	"Q2 Months",
	"6-Month Target",
	"Q3 Target",
	"Q3 Months",
	"Q4 Target",
	"Q4 Months",
	"Annual Target",
	"Implementor",
	"Budget Required",
	"Government",
	"Partners",
	"SDG",
	"Other",
	"Total Available",
	"Gap",
}

const noBudget = "-"

// csvWriter implements the adapter.ReportEncoder interface.
type csvWriter struct{}

// NewCSVWriter creates a CSV report encoder.
func NewCSVWriter() adapter.ReportEncoder {
	return &csvWriter{}
}

// ContentType returns the MIME type of the encoded report.
func (w *csvWriter) ContentType() string {
	return "text/csv; charset=utf-8"
}

// Extension returns the file extension of the encoded report.
func (w *csvWriter) Extension() string {
	return ".csv"
}

// Encode writes the header block, a blank line, the column row and one line per report row.
func (w *csvWriter) Encode(report budget.Report) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := [][]string{
		{"Organization", report.Header.Organization},
		{"Planner", report.Header.Planner},
		{"Plan Type", report.Header.PlanType},
		{"From", report.Header.FromDate},
		{"To", report.Header.ToDate},
		{},
		Columns,
	}
	if err := writer.WriteAll(header); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for i, row := range report.Rows {
		if err := writer.Write(Record(row)); err != nil {
			return nil, fmt.Errorf("failed to write report row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}
	return buf.Bytes(), nil
}

// Record returns the cells of a row in column order.
func Record(row budget.ReportRow) []string {
	record := []string{
		row.Number,
		row.ObjectiveTitle,
		row.ObjectiveWeight,
		row.InitiativeName,
		row.InitiativeWeight,
		row.ItemName,
		row.ItemWeight,
		row.Baseline,
		row.Q1Target,
		row.Q1Months,
		row.Q2Target,
		row.Q2Months,
		row.SixMonthTarget,
		row.Q3Target,
		row.Q3Months,
		row.Q4Target,
		row.Q4Months,
		row.AnnualTarget,
		row.Implementor,
	}

	if !row.HasBudget {
		for i := 0; i < 7; i++ {
			record = append(record, noBudget)
		}
		return record
	}

	return append(record,
		row.Budget.Required.StringFixed(2),
		row.Budget.Government.StringFixed(2),
		row.Budget.Partners.StringFixed(2),
		row.Budget.SDG.StringFixed(2),
		row.Budget.Other.StringFixed(2),
		row.Budget.TotalAvailable.StringFixed(2),
		row.Budget.Gap.StringFixed(2),
	)
}
