package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/dto"
)

type objectiveWeights struct {
	ID                string                    `json:"id"`
	Title             string                    `json:"title"`
	EffectiveWeight   decimal.Decimal           `json:"effective_weight"`
	InitiativeWeights dto.WeightCheckResponse   `json:"initiative_weights"`
	ActivityWeights   dto.WeightCheckResponse   `json:"activity_weights"`
	Initiatives       []initiativeWeightsReport `json:"initiatives"`
}

type initiativeWeightsReport struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Weight          decimal.Decimal         `json:"weight"`
	ActivityWeights dto.WeightCheckResponse `json:"activity_weights"`
	MeasureWeights  dto.WeightCheckResponse `json:"measure_weights"`
}

type weightsReport struct {
	OrganizationID int64              `json:"organization_id"`
	Objectives     []objectiveWeights `json:"objectives"`
	OverTarget     []string           `json:"over_target"`
}

func newWeightsCmd(app *App) *cobra.Command {
	var flags snapshotFlags
	var strict bool

	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Check weight distribution at every level",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			tree, err := app.aggregate(s)
			if err != nil {
				return err
			}

			report := buildWeightsReport(tree)
			if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if strict && len(report.OverTarget) > 0 {
				return fmt.Errorf("weights over target at %d level(s)", len(report.OverTarget))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any level is over target")
	return cmd
}

func buildWeightsReport(tree *budget.Tree) weightsReport {
	report := weightsReport{
		OrganizationID: tree.OrganizationID,
		Objectives:     make([]objectiveWeights, 0, len(tree.Objectives)),
		OverTarget:     tree.OverTargetLevels(),
	}
	if report.OverTarget == nil {
		report.OverTarget = []string{}
	}

	for _, o := range tree.Objectives {
		ow := objectiveWeights{
			ID:                o.ID.String(),
			Title:             o.Title,
			EffectiveWeight:   o.EffectiveWeight,
			InitiativeWeights: dto.ToWeightCheckResponse(o.InitiativeWeights),
			ActivityWeights:   dto.ToWeightCheckResponse(o.ActivityWeights),
			Initiatives:       make([]initiativeWeightsReport, 0, len(o.Initiatives)),
		}
		for _, i := range o.Initiatives {
			ow.Initiatives = append(ow.Initiatives, initiativeWeightsReport{
				ID:              i.ID.String(),
				Name:            i.Name,
				Weight:          i.Weight,
				ActivityWeights: dto.ToWeightCheckResponse(i.ActivityWeights),
				MeasureWeights:  dto.ToWeightCheckResponse(i.MeasureWeights),
			})
		}
		report.Objectives = append(report.Objectives, ow)
	}
	return report
}
