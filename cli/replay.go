package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/harvestsim/config"
)

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay",
		Short: "Repeat the last simulation",
		Long:  `Reload the parameter snapshot saved after the previous run and run it again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir := flagOut
			if outDir == "" {
				outDir = config.Default().Output.Dir
			}

			path := config.LastRunPath(outDir)
			if _, err := os.Stat(path); err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("no previous run found (%s does not exist)", path)
				}
				return err
			}

			cfg, err := config.LoadFromFile(path)
			if err != nil {
				return fmt.Errorf("load last-run snapshot: %w", err)
			}

			// Flag overrides still apply on replay.
			if flagJournalType != "" {
				cfg.Journal.Type = flagJournalType
			}
			if flagDBPath != "" {
				cfg.Journal.DBPath = flagDBPath
			}

			return executeRun(cmd, cfg)
		},
	}
}
