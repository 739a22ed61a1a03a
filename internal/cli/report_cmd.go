package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/dto"
	"github.com/strategic-planning/backend/internal/integration/export"
)

const (
	formatCSV  = "csv"
	formatJSON = "json"
)

func newReportCmd(app *App) *cobra.Command {
	var flags snapshotFlags
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the flattened plan report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatCSV && format != formatJSON {
				return fmt.Errorf("unknown format %q: use %s or %s", format, formatCSV, formatJSON)
			}

			s, err := flags.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			tree, err := app.aggregate(s)
			if err != nil {
				return err
			}

			report := budget.NewProjector(s.snapshot.OrganizationLookup, app.Rules.DefaultImplementor).
				Build(reportHeader(s), tree)

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), dto.ToPlanReportResponse("", report))
			}

			data, err := export.NewCSVWriter().Encode(report)
			if err != nil {
				return fmt.Errorf("encoding report: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", formatCSV, "Output format (csv or json)")
	return cmd
}

// reportHeader takes the snapshot header and falls back to the directory name of the organization.
func reportHeader(s *loadedSnapshot) budget.ReportHeader {
	h := s.snapshot.Header
	header := budget.ReportHeader{
		Organization: h.Organization,
		Planner:      h.Planner,
		PlanType:     h.PlanType,
		FromDate:     h.FromDate,
		ToDate:       h.ToDate,
	}
	if header.Organization == "" {
		if name, ok := s.snapshot.OrganizationLookup(s.organizationID); ok {
			header.Organization = name
		}
	}
	return header
}
