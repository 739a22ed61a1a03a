// Package cli implements the plan-report command, which aggregates and
// projects plan snapshots without a database.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/dto"
)

// App holds what the commands share.
type App struct {
	Rules valueobject.PlanningRules
}

// snapshotFlags are the flags every subcommand takes.
type snapshotFlags struct {
	file           string
	organizationID int64
}

// NewRootCmd creates the top-level "plan-report" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "plan-report",
		Short:         "Aggregate and report on strategic plan snapshots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSummaryCmd(app),
		newReportCmd(app),
		newWeightsCmd(app),
	)

	return root
}

func (f *snapshotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Path to the plan snapshot JSON (- for stdin)")
	cmd.Flags().Int64Var(&f.organizationID, "org", 0, "Organization to report for (defaults to the snapshot's)")
	_ = cmd.MarkFlagRequired("file")
}

// loadedSnapshot is a decoded snapshot with its domain objectives.
type loadedSnapshot struct {
	snapshot       dto.PlanSnapshot
	objectives     []entity.Objective
	organizationID int64
}

func (f *snapshotFlags) load(stdin io.Reader) (*loadedSnapshot, error) {
	var r io.Reader
	if f.file == "-" {
		r = stdin
	} else {
		file, err := os.Open(f.file)
		if err != nil {
			return nil, fmt.Errorf("opening snapshot: %w", err)
		}
		defer file.Close()
		r = file
	}

	var snapshot dto.PlanSnapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	organizationID := snapshot.OrganizationID
	if f.organizationID > 0 {
		organizationID = f.organizationID
	}
	if organizationID <= 0 {
		return nil, fmt.Errorf("organization id is required: pass --org or set organization_id in the snapshot")
	}

	objectives, err := snapshot.ToObjectives()
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	if objectives == nil {
		return nil, fmt.Errorf("snapshot has no objectives list")
	}

	return &loadedSnapshot{
		snapshot:       snapshot,
		objectives:     objectives,
		organizationID: organizationID,
	}, nil
}

func (app *App) aggregate(s *loadedSnapshot) (*budget.Tree, error) {
	tree, err := budget.NewAggregator(app.Rules).Aggregate(s.objectives, s.organizationID)
	if err != nil {
		return nil, fmt.Errorf("aggregating snapshot: %w", err)
	}
	return tree, nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
