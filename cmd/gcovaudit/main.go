package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/gcovaudit/internal/constants"
)

func main() {
	if err := run(); err != nil {
		// Diagnostics were already printed for audit failures
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", constants.AppName, err)
		os.Exit(1)
	}
}

func run() error {
	if err := createRootCommand(afero.NewOsFs()).ExecuteContext(context.Background()); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}

// ExitError carries a process exit status for a run whose diagnostics
// have already been written.
type ExitError struct {
	Message string
	Code    int
}

func (e *ExitError) Error() string {
	return e.Message
}
