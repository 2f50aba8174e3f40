package cli

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/harvestsim/journal"
	"github.com/rustyeddy/harvestsim/sim"
)

func newGrowthCmd() *cobra.Command {
	var (
		principal float64
		rate      float64
		weeks     int
	)

	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Project pure exponential compounding",
		Long: `Project compound growth of a principal over a number of weeks.
Week 0 is the untouched principal; week k holds principal*(1+rate)^k.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := baseConfig()
			if err != nil {
				return err
			}

			cfg.Simulation.Kind = journal.KindGrowth
			if cmd.Flags().Changed("principal") {
				cfg.Growth.Principal = principal
			}
			if cmd.Flags().Changed("rate") {
				cfg.Growth.Rate = rate
			}
			if cmd.Flags().Changed("weeks") {
				cfg.Growth.Periods = weeks
			}

			return executeRun(cmd, cfg)
		},
	}

	cmd.Flags().Float64VarP(&principal, "principal", "p", 1000, "initial amount")
	cmd.Flags().Float64VarP(&rate, "rate", "r", sim.DefaultGrowthRate, "weekly growth rate (decimal, e.g. 0.25 for 25%)")
	cmd.Flags().IntVarP(&weeks, "weeks", "n", sim.DefaultPeriods, "number of weeks to project")

	return cmd
}
