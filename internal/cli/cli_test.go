package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

const snapshotJSON = `{
  "organization_id": 7,
  "organizations": {"7": "Health Bureau", "9": "Water Bureau"},
  "header": {"planner": "Abebe Kebede", "plan_type": "LEO/EO Plan", "from_date": "2025-07-08", "to_date": "2026-07-07"},
  "objectives": [
    {
      "id": "0b4f7e43-0a57-4b8e-9d2e-1f2a3b4c5d6e",
      "title": "Improve maternal health",
      "weight": "40",
      "initiatives": [
        {
          "name": "Expand antenatal care",
          "weight": 40,
          "organization_id": 7,
          "performance_measures": [
            {"name": "ANC coverage", "weight": "14", "target_type": "increasing", "q1_target": 10, "q4_target": 40, "annual_target": 40}
          ],
          "main_activities": [
            {
              "name": "Train midwives",
              "weight": "ACTIVITY_WEIGHT",
              "target_type": "cumulative",
              "selected_quarters": ["q1", "Q2"],
              "sub_activities": [
                {
                  "name": "Regional training",
                  "budget_calculation_type": "WITHOUT_TOOL",
                  "activity_type": "Training",
                  "estimated_cost_without_tool": "3000",
                  "government_treasury": 1000,
                  "sdg_funding": "200"
                }
              ]
            }
          ]
        },
        {
          "name": "Water point rehabilitation",
          "weight": 30,
          "organization_id": 9,
          "main_activities": [
            {
              "name": "Rehabilitate wells",
              "weight": 19.5,
              "target_type": "constant",
              "sub_activities": [
                {"name": "Spare parts", "budget_calculation_type": "WITHOUT_TOOL", "activity_type": "Procurement", "estimated_cost_without_tool": 500}
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func writeSnapshot(t *testing.T, activityWeight string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	content := strings.Replace(snapshotJSON, `"ACTIVITY_WEIGHT"`, activityWeight, 1)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(&App{Rules: valueobject.DefaultPlanningRules()})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSummaryCommand(t *testing.T) {
	t.Run("aggregates only what the organization can see", func(t *testing.T) {
		out, err := execute(t, "", "summary", "--file", writeSnapshot(t, "26"))
		require.NoError(t, err)

		var summary struct {
			OrganizationID int64 `json:"organization_id"`
			GrandTotal     struct {
				Required       string `json:"required"`
				TotalAvailable string `json:"total_available"`
				Gap            string `json:"gap"`
			} `json:"grand_total"`
			Objectives []struct {
				Initiatives []json.RawMessage `json:"initiatives"`
			} `json:"objectives"`
			OverTarget []string `json:"over_target"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &summary))

		assert.Equal(t, int64(7), summary.OrganizationID)
		assert.Equal(t, "3000", summary.GrandTotal.Required)
		assert.Equal(t, "1200", summary.GrandTotal.TotalAvailable)
		assert.Equal(t, "1800", summary.GrandTotal.Gap)
		require.Len(t, summary.Objectives, 1)
		assert.Len(t, summary.Objectives[0].Initiatives, 1)
	})

	t.Run("org flag overrides the snapshot organization", func(t *testing.T) {
		out, err := execute(t, "", "summary", "--file", writeSnapshot(t, "26"), "--org", "9")
		require.NoError(t, err)
		assert.Contains(t, out, `"required": "500"`)
		assert.NotContains(t, out, "Train midwives")
	})

	t.Run("partner list counts toward available funding", func(t *testing.T) {
		content := strings.Replace(snapshotJSON, `"ACTIVITY_WEIGHT"`, "26", 1)
		content = strings.Replace(content, `"sdg_funding": "200"`, `"sdg_funding": "200", "partners_list": [{"name": "UNICEF", "amount": 300}]`, 1)

		out, err := execute(t, content, "summary", "--file", "-")
		require.NoError(t, err)

		var summary struct {
			GrandTotal struct {
				Partners       string `json:"partners"`
				TotalAvailable string `json:"total_available"`
				Gap            string `json:"gap"`
			} `json:"grand_total"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &summary))
		assert.Equal(t, "300", summary.GrandTotal.Partners)
		assert.Equal(t, "1500", summary.GrandTotal.TotalAvailable)
		assert.Equal(t, "1500", summary.GrandTotal.Gap)
	})

	t.Run("reads the snapshot from stdin", func(t *testing.T) {
		content := strings.Replace(snapshotJSON, `"ACTIVITY_WEIGHT"`, "26", 1)
		out, err := execute(t, content, "summary", "--file", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "Train midwives")
	})
}

func TestReportCommand(t *testing.T) {
	t.Run("writes CSV with the organization resolved from the directory", func(t *testing.T) {
		out, err := execute(t, "", "report", "--file", writeSnapshot(t, "26"))
		require.NoError(t, err)

		reader := csv.NewReader(strings.NewReader(out))
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		require.NoError(t, err)
		require.NotEmpty(t, records)
		assert.Equal(t, []string{"Organization", "Health Bureau"}, records[0])

		last := records[len(records)-1]
		assert.Contains(t, last, "Total")
		assert.Contains(t, last, "3000.00")
		assert.NotContains(t, out, "Water point rehabilitation")
	})

	t.Run("writes JSON rows", func(t *testing.T) {
		out, err := execute(t, "", "report", "--file", writeSnapshot(t, "26"), "--format", "json")
		require.NoError(t, err)

		var report struct {
			Rows []struct {
				ItemType string `json:"item_type"`
				ItemName string `json:"item_name"`
			} `json:"rows"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		require.Len(t, report.Rows, 3)
		assert.Equal(t, "PerformanceMeasure", report.Rows[0].ItemType)
		assert.Equal(t, "MainActivity", report.Rows[1].ItemType)
		assert.Equal(t, "Summary", report.Rows[2].ItemType)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		_, err := execute(t, "", "report", "--file", writeSnapshot(t, "26"), "--format", "xlsx")
		assert.ErrorContains(t, err, "unknown format")
	})
}

func TestWeightsCommand(t *testing.T) {
	t.Run("balanced plan passes strict mode", func(t *testing.T) {
		out, err := execute(t, "", "weights", "--file", writeSnapshot(t, "26"), "--strict")
		require.NoError(t, err)
		assert.Contains(t, out, `"over_target": []`)
	})

	t.Run("over-weighted activities fail strict mode", func(t *testing.T) {
		out, err := execute(t, "", "weights", "--file", writeSnapshot(t, "30"), "--strict")
		require.Error(t, err)
		assert.Contains(t, out, "initiative_activities")
	})

	t.Run("over-weighted activities are only reported without strict", func(t *testing.T) {
		_, err := execute(t, "", "weights", "--file", writeSnapshot(t, "30"))
		assert.NoError(t, err)
	})
}

func TestInvalidInput(t *testing.T) {
	dir := t.TempDir()

	noObjectives := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(noObjectives, []byte(`{"organization_id": 7}`), 0o600))

	noOrganization := filepath.Join(dir, "no-org.json")
	require.NoError(t, os.WriteFile(noOrganization, []byte(`{"objectives": []}`), 0o600))

	malformed := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(malformed, []byte(`{"objectives": [`), 0o600))

	badID := filepath.Join(dir, "bad-id.json")
	require.NoError(t, os.WriteFile(badID, []byte(`{"organization_id": 7, "objectives": [{"id": "nope"}]}`), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing file flag", args: []string{"summary"}},
		{name: "missing file", args: []string{"summary", "--file", filepath.Join(dir, "missing.json")}},
		{name: "malformed json", args: []string{"report", "--file", malformed}},
		{name: "no objectives list", args: []string{"summary", "--file", noObjectives}},
		{name: "no organization", args: []string{"weights", "--file", noOrganization}},
		{name: "invalid id", args: []string{"summary", "--file", badID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}
