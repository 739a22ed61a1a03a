package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strategic-planning/backend/internal/domain/budget"
)

func TestCSVWriter_Encode(t *testing.T) {
	report := budget.Report{
		Header: budget.ReportHeader{
			Organization: "Planning, Monitoring and Evaluation",
			Planner:      "Abebe",
			PlanType:     "LEO/EO Plan",
			FromDate:     "2025-07-08",
			ToDate:       "2026-07-07",
		},
		Rows: []budget.ReportRow{
			{
				Number:           "1",
				ObjectiveTitle:   "Quality of care",
				ObjectiveWeight:  "20",
				InitiativeName:   "Expand services",
				InitiativeWeight: "20",
				ItemType:         budget.ItemTypePerformanceMeasure,
				ItemName:         "Coverage",
				ItemWeight:       "7",
				Q1Target:         "1",
				Q1Months:         "JUL, AUG, SEP",
			},
			{
				ItemType:   budget.ItemTypeMainActivity,
				ItemName:   "Training",
				ItemWeight: "13",
				HasBudget:  true,
				Budget: budget.Summary{
					Required:       decimal.NewFromInt(10000),
					Government:     decimal.NewFromInt(4000),
					SDG:            decimal.Zero,
					Partners:       decimal.NewFromInt(1000),
					Other:          decimal.Zero,
					TotalAvailable: decimal.NewFromInt(5000),
					Gap:            decimal.NewFromInt(5000),
				},
			},
		},
	}

	body, err := NewCSVWriter().Encode(report)
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(string(body)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8)

	assert.Equal(t, []string{"Organization", "Planning, Monitoring and Evaluation"}, records[0])
	assert.Equal(t, []string{"To", "2026-07-07"}, records[4])
	assert.Equal(t, Columns, records[5])

	measure := records[6]
	require.Len(t, measure, len(Columns))
	assert.Equal(t, "Coverage", measure[5])
	assert.Equal(t, "JUL, AUG, SEP", measure[9])
	assert.Equal(t, "-", measure[19])

	activity := records[7]
	assert.Equal(t, "10000.00", activity[19])
	assert.Equal(t, "4000.00", activity[20])
	assert.Equal(t, "1000.00", activity[21])
	assert.Equal(t, "5000.00", activity[25])
}

func TestCSVWriter_FileType(t *testing.T) {
	writer := NewCSVWriter()
	assert.Equal(t, ".csv", writer.Extension())
	assert.True(t, strings.HasPrefix(writer.ContentType(), "text/csv"))
}
