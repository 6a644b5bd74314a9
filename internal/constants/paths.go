// Package constants contains names shared across gcovaudit packages.
package constants

const (
	// AppName is the program name used for diagnostics prefixes and XDG paths.
	AppName = "gcovaudit"

	// LogFilename is the default log file name for gcovaudit.
	LogFilename = "gcovaudit.log"

	// ConfigFilename is the config file looked up in the project root.
	ConfigFilename = ".gcovaudit.yml"

	// EnvPrefix is the prefix for environment variable overrides (GCOVAUDIT_*).
	EnvPrefix = "GCOVAUDIT"

	// ProjectDirEnv overrides project root detection.
	ProjectDirEnv = "GCOVAUDIT_PROJECT_DIR"
)
