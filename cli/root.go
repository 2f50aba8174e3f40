// Package cli wires the simulators, journal and report rendering into the
// harvestsim command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/harvestsim/config"
	"github.com/rustyeddy/harvestsim/report"
	"github.com/rustyeddy/harvestsim/run"
)

var (
	flagConfig      string
	flagOut         string
	flagJournalType string
	flagDBPath      string
	flagNoColor     bool
	flagInteractive bool
)

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "harvestsim",
		Short: "Weekly trading pot simulator",
		Long: `harvestsim models the week-by-week evolution of a trading account under
two policies: pure exponential compounding, and a capped harvest engine that
reinvests profit up to a ceiling and then splits the excess between savings
and spendable cash.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagInteractive {
				return runInteractive(cmd)
			}
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "load parameters from a YAML/JSON config file")
	pf.StringVar(&flagOut, "out", "", "output directory for run artifacts (default ./output)")
	pf.StringVar(&flagJournalType, "journal", "", "journal type: sqlite, csv or none")
	pf.StringVar(&flagDBPath, "db", "", "path to the SQLite journal database")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "prompt for parameters interactively")

	rootCmd.AddCommand(
		newGrowthCmd(),
		newHarvestCmd(),
		newReplayCmd(),
		newRunsCmd(),
	)

	return rootCmd
}

// baseConfig builds the effective config from --config (or defaults) plus the
// persistent flag overrides.
func baseConfig() (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.LoadFromFile(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagOut != "" {
		cfg.Output.Dir = flagOut
	}
	if flagJournalType != "" {
		cfg.Journal.Type = flagJournalType
	}
	if flagDBPath != "" {
		cfg.Journal.DBPath = flagDBPath
	}
	return cfg, nil
}

// executeRun validates, runs, renders and snapshots a configured simulation.
func executeRun(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	j, err := run.OpenJournal(cfg.Journal)
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
	}

	r := &run.Runner{Config: cfg, Journal: j}
	res, err := r.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, res.Report)

	if cfg.Output.PrintChart {
		fmt.Fprintln(out)
		if flagNoColor {
			err = report.PlotPlain(out, res.ChartTitle, res.Series, 0, 0)
		} else {
			err = report.Plot(out, res.ChartTitle, res.Series, 0, 0)
		}
		if err != nil {
			return err
		}
	}

	st := newStyles(!flagNoColor)
	fmt.Fprintln(out, st.ok.Render(fmt.Sprintf("Results saved to %s", res.Dir)))
	fmt.Fprintln(out, st.faint.Render(fmt.Sprintf("run id: %s", res.RunID)))

	// Snapshot the effective parameters so `harvestsim replay` can repeat
	// this run.
	if err := cfg.SaveToFile(config.LastRunPath(cfg.Output.Dir)); err != nil {
		return fmt.Errorf("save last-run snapshot: %w", err)
	}
	return nil
}
