package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gcovaudit/internal/audit"
	"github.com/wizzomafizzo/gcovaudit/internal/selector"
)

// createSnapshotCommand creates the snapshot command.
func createSnapshotCommand(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot report-directory",
		Short: "Print a suppressions file matching the current reports",
		Long: `Print one "<report> <count>" line for every selected report with uncovered
lines. Redirect the output to bootstrap a suppressions file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(cmd, fs)
			if err != nil {
				return err
			}

			results, err := audit.New(fs, env.printer, selector.WithCorrelator(env.correlate)).Snapshot(env.ctx, audit.Options{
				ReportDir:  args[0],
				IncludeDir: env.cfg.IncludeDir,
			})
			if err != nil {
				return &ExitError{Code: 1, Message: err.Error()}
			}

			return audit.WriteSuppressions(cmd.OutOrStdout(), results)
		},
	}
}
