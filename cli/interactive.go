package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/harvestsim/journal"
)

// runInteractive reproduces the classic menu flow: pick a simulation type,
// answer per-parameter prompts (empty input keeps the default), run.
func runInteractive(cmd *cobra.Command) error {
	cfg, err := baseConfig()
	if err != nil {
		return err
	}

	st := newStyles(!flagNoColor)
	out := cmd.OutOrStdout()
	p := newPrompter(cmd.InOrStdin(), out, st)

	fmt.Fprintln(out, st.banner.Render("=== Trading Simulator ==="))
	fmt.Fprintln(out, st.menu.Render("Available simulation types:"))
	fmt.Fprintln(out, "1. Exponential Growth")
	fmt.Fprintln(out, "2. Baseline Harvest Engine")
	fmt.Fprintln(out, "3. Exit")

	choice, err := p.choice("Select simulation type (1, 2, or 3)", []string{"1", "2", "3"}, "2")
	if err != nil {
		return err
	}
	if choice == "3" {
		fmt.Fprintln(out, st.ok.Render("Exiting program. Goodbye!"))
		return nil
	}

	if choice == "1" {
		cfg.Simulation.Kind = journal.KindGrowth
		if cfg.Growth.Principal, err = p.float("Enter principal/initial amount", cfg.Growth.Principal); err != nil {
			return err
		}
		if cfg.Growth.Rate, err = p.float("Enter weekly growth rate (decimal, e.g. 0.25 for 25%)", cfg.Growth.Rate); err != nil {
			return err
		}
		if cfg.Growth.Periods, err = p.int("Enter number of periods/weeks", cfg.Growth.Periods); err != nil {
			return err
		}
		return executeRun(cmd, cfg)
	}

	cfg.Simulation.Kind = journal.KindHarvest
	h := &cfg.Harvest
	if h.InitialPot, err = p.float("Enter initial pot amount", h.InitialPot); err != nil {
		return err
	}
	if h.WeeklyReturnRate, err = p.float("Enter weekly return rate (decimal, e.g. 0.25 for 25%)", h.WeeklyReturnRate); err != nil {
		return err
	}
	if h.EngineCap, err = p.float("Enter engine cap", h.EngineCap); err != nil {
		return err
	}
	if h.TotalWeeks, err = p.int("Enter total weeks", h.TotalWeeks); err != nil {
		return err
	}
	if h.InitialVault, err = p.float("Enter initial vault/savings amount", h.InitialVault); err != nil {
		return err
	}
	return executeRun(cmd, cfg)
}
