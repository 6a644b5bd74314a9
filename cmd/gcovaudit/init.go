package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gcovaudit/internal/config"
	"github.com/wizzomafizzo/gcovaudit/internal/constants"
	"github.com/wizzomafizzo/gcovaudit/internal/project"
)

// createInitCommand creates the init command.
func createInitCommand(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default " + constants.ConfigFilename,
		Long:  "Write a default config file to the project root, or to --config when given. Existing files are left alone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			if path == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get current working directory: %w", err)
				}
				path = filepath.Join(project.FindRoot(fs, cwd), constants.ConfigFilename)
			}

			exists, err := afero.Exists(fs, path)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}
			if exists {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
				return nil
			}

			data, err := config.DefaultConfigYAML()
			if err != nil {
				return fmt.Errorf("failed to generate default config: %w", err)
			}
			if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write config file to %s: %w", path, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}
