package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gcovaudit/internal/audit"
	"github.com/wizzomafizzo/gcovaudit/internal/config"
	"github.com/wizzomafizzo/gcovaudit/internal/constants"
	"github.com/wizzomafizzo/gcovaudit/internal/diag"
	"github.com/wizzomafizzo/gcovaudit/internal/logging"
	"github.com/wizzomafizzo/gcovaudit/internal/project"
	"github.com/wizzomafizzo/gcovaudit/internal/selector"
	"golang.org/x/term"
)

// createRootCommand creates the audit command; fs backs every file access.
func createRootCommand(fs afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName + " [flags] report-directory [suppressions-file]",
		Short: "Flag files with unexpected uncovered source lines",
		Long: `Scan a directory of .gcov reports and fail when a file has uncovered source
lines that are not listed, with a matching count, in the suppressions file.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, fs, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to config file (default: <project root>/"+constants.ConfigFilename+")")
	flags.StringP("include-dir", "i", "", "Only audit headers found under this directory")
	flags.String("correlation", "", "Header correlation mode (default, any)")
	flags.String("log-level", "", "Debug log level (disabled, error, warn, info, debug, trace)")
	flags.String("log-file", "", "Debug log file (default: XDG state directory)")
	flags.Bool("no-color", false, "Disable colored diagnostics")

	rootCmd.AddCommand(
		createInitCommand(fs),
		createSnapshotCommand(fs),
	)

	return rootCmd
}

func runAudit(cmd *cobra.Command, fs afero.Fs, args []string) error {
	env, err := newEnvironment(cmd, fs)
	if err != nil {
		return err
	}

	opts := audit.Options{
		ReportDir:    args[0],
		IncludeDir:   env.cfg.IncludeDir,
		Suppressions: env.cfg.Suppressions,
	}
	if len(args) > 1 {
		opts.Suppressions = args[1]
	}

	outcome, err := audit.New(fs, env.printer, selector.WithCorrelator(env.correlate)).Run(env.ctx, opts)
	if err != nil {
		logging.Get(env.ctx).Error().Err(err).Msg("audit aborted")
		return &ExitError{Code: 1, Message: err.Error()}
	}
	if outcome.Failed() {
		return &ExitError{Code: 1, Message: outcome.Summary()}
	}
	return nil
}

// environment is the resolved config, logger context and printer for one command.
type environment struct {
	ctx       context.Context
	cfg       *config.Config
	printer   *diag.Printer
	correlate selector.Correlator
}

func newEnvironment(cmd *cobra.Command, fs afero.Fs) (*environment, error) {
	cfg, err := loadConfig(cmd, fs)
	if err != nil {
		return nil, err
	}

	correlate, err := selector.LookupCorrelator(cfg.Correlation)
	if err != nil {
		return nil, err
	}

	printer := diag.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), constants.AppName,
		!cfg.NoColor && isTerminal(cmd.ErrOrStderr()))

	ctx := cmd.Context()
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logCtx, err := logging.New(ctx, fs, logging.Config{
		Path:       cfg.Logging.Path,
		Level:      level,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
	})
	if err != nil {
		// The debug log is optional; keep auditing without it.
		printer.Print(diag.Warningf("warning: debug logging disabled: %v", err))
		logCtx = ctx
	}

	return &environment{ctx: logCtx, cfg: cfg, printer: printer, correlate: correlate}, nil
}

// loadConfig resolves settings with precedence flags > environment > file > defaults.
func loadConfig(cmd *cobra.Command, fs afero.Fs) (*config.Config, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		if cwd, err := os.Getwd(); err == nil {
			path = config.Discover(fs, project.FindRoot(fs, cwd))
		}
	}

	cfg, err := config.Load(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flags.Changed("include-dir") {
		cfg.IncludeDir, _ = flags.GetString("include-dir")
	}
	if flags.Changed("correlation") {
		cfg.Correlation, _ = flags.GetString("correlation")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.Logging.Path, _ = flags.GetString("log-file")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
