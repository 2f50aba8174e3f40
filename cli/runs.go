package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/harvestsim/config"
	"github.com/rustyeddy/harvestsim/journal"
	"github.com/rustyeddy/harvestsim/report"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect journaled runs",
	}

	cmd.AddCommand(
		newRunsListCmd(),
		newRunsShowCmd(),
	)

	return cmd
}

func openSQLiteJournal() (*journal.SQLite, error) {
	path := flagDBPath
	if path == "" {
		path = config.Default().Journal.DBPath
	}
	return journal.NewSQLite(path)
}

func newRunsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := openSQLiteJournal()
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer j.Close()

			runs, err := j.ListRuns(limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "no runs journaled yet")
				return nil
			}

			fmt.Fprintf(out, "%-26s  %-7s  %-20s  %5s  %14s  %14s  %14s\n",
				"RUN ID", "KIND", "CREATED", "WEEKS", "FINAL POT", "VAULT", "SPEND")
			for _, r := range runs {
				fmt.Fprintf(out, "%-26s  %-7s  %-20s  %5d  %14s  %14s  %14s\n",
					r.RunID, r.Kind, r.Created.Format("2006-01-02 15:04:05"),
					r.Weeks,
					report.Money(r.FinalPot),
					report.Money(r.FinalVault),
					report.Money(r.FinalSpend))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum runs to list (0 for all)")

	return cmd
}

func newRunsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run_id>",
		Short: "Show one run's parameters and weekly history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := openSQLiteJournal()
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer j.Close()

			rec, err := j.GetRun(args[0])
			if err != nil {
				return err
			}
			weeks, err := j.ListWeeks(rec.RunID)
			if err != nil {
				return fmt.Errorf("list weeks: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:     %s\n", rec.RunID)
			fmt.Fprintf(out, "Kind:    %s\n", rec.Kind)
			fmt.Fprintf(out, "Created: %s\n", rec.Created.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Params:  %s\n", rec.Params)
			fmt.Fprintf(out, "Weeks:   %d\n", rec.Weeks)
			fmt.Fprintln(out)

			if rec.Kind == journal.KindGrowth {
				fmt.Fprintf(out, "%4s  %14s\n", "WEEK", "AMOUNT")
				for _, w := range weeks {
					fmt.Fprintf(out, "%4d  %14s\n", w.Week, report.Money(w.Pot))
				}
				return nil
			}

			fmt.Fprintf(out, "%4s  %14s  %14s  %14s  %14s  %14s\n",
				"WEEK", "POT", "VAULT", "SPEND", "PROFIT", "WITHDRAWAL")
			for _, w := range weeks {
				fmt.Fprintf(out, "%4d  %14s  %14s  %14s  %14s  %14s\n",
					w.Week,
					report.Money(w.Pot),
					report.Money(w.Vault),
					report.Money(w.Spend),
					report.Money(w.Profit),
					report.Money(w.Withdrawal))
			}
			return nil
		},
	}
}
