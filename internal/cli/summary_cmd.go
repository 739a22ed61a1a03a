package cli

import (
	"github.com/spf13/cobra"

	"github.com/strategic-planning/backend/internal/integration/entrypoint/dto"
)

func newSummaryCmd(app *App) *cobra.Command {
	var flags snapshotFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the aggregated budget and weight tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			tree, err := app.aggregate(s)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.ToPlanSummaryResponse("", tree, false))
		},
	}

	flags.register(cmd)
	return cmd
}
