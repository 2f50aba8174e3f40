package cli

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/harvestsim/journal"
	"github.com/rustyeddy/harvestsim/sim"
)

func newHarvestCmd() *cobra.Command {
	var (
		pot        float64
		rate       float64
		engineCap  float64
		weeks      int
		vault      float64
		growthPct  float64
		harvestPct float64
		resetOnDip bool
	)

	cmd := &cobra.Command{
		Use:   "harvest",
		Short: "Run the capped harvest engine",
		Long: `Simulate a trading pot that compounds weekly until it reaches the engine
cap, then withdraws the excess each week. The first withdrawal is split by
the growth percentage, every later one by the harvest percentage.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := baseConfig()
			if err != nil {
				return err
			}

			cfg.Simulation.Kind = journal.KindHarvest
			flags := cmd.Flags()
			if flags.Changed("pot") {
				cfg.Harvest.InitialPot = pot
			}
			if flags.Changed("rate") {
				cfg.Harvest.WeeklyReturnRate = rate
			}
			if flags.Changed("cap") {
				cfg.Harvest.EngineCap = engineCap
			}
			if flags.Changed("weeks") {
				cfg.Harvest.TotalWeeks = weeks
			}
			if flags.Changed("vault") {
				cfg.Harvest.InitialVault = vault
			}
			if flags.Changed("growth-pct") {
				cfg.Harvest.GrowthVaultPct = growthPct
			}
			if flags.Changed("harvest-pct") {
				cfg.Harvest.HarvestVaultPct = harvestPct
			}
			if flags.Changed("reset-on-dip") {
				cfg.Harvest.ResetPhaseOnDip = resetOnDip
			}

			return executeRun(cmd, cfg)
		},
	}

	cmd.Flags().Float64VarP(&pot, "pot", "p", 1000, "initial trading pot")
	cmd.Flags().Float64VarP(&rate, "rate", "r", sim.DefaultGrowthRate, "weekly return rate (decimal, e.g. 0.25 for 25%)")
	cmd.Flags().Float64VarP(&engineCap, "cap", "c", 10000, "engine cap: pot ceiling before withdrawals start")
	cmd.Flags().IntVarP(&weeks, "weeks", "n", sim.DefaultPeriods, "total weeks to simulate")
	cmd.Flags().Float64Var(&vault, "vault", 0, "initial vault balance")
	cmd.Flags().Float64Var(&growthPct, "growth-pct", sim.DefaultGrowthVaultPct, "vault share of the first capped withdrawal (percent)")
	cmd.Flags().Float64Var(&harvestPct, "harvest-pct", sim.DefaultHarvestVaultPct, "vault share of later withdrawals (percent)")
	cmd.Flags().BoolVar(&resetOnDip, "reset-on-dip", false, "re-arm the growth split when the pot dips under the cap")

	return cmd
}
