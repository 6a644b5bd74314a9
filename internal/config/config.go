package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/wizzomafizzo/gcovaudit/internal/constants"
	"github.com/wizzomafizzo/gcovaudit/internal/logging"
	"github.com/wizzomafizzo/gcovaudit/internal/selector"
)

// Config holds the settings that can come from a file or GCOVAUDIT_* variables.
// Command-line flags are applied on top by the CLI.
type Config struct {
	IncludeDir   string        `yaml:"include_dir" mapstructure:"include_dir"`
	Suppressions string        `yaml:"suppressions" mapstructure:"suppressions"`
	Correlation  string        `yaml:"correlation" mapstructure:"correlation"`
	Logging      LoggingConfig `yaml:"logging" mapstructure:"logging"`
	NoColor      bool          `yaml:"no_color" mapstructure:"no_color"`
}

// LoggingConfig controls the debug log; it never affects diagnostics.
type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	Path       string `yaml:"path,omitempty" mapstructure:"path"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
}

// Load reads the config file at path (if any) and GCOVAUDIT_* environment
// variables from fs. An empty path loads defaults and environment only.
func Load(fs afero.Fs, path string) (*Config, error) {
	viperInstance := newViper(fs)

	if path != "" {
		viperInstance.SetConfigFile(path)
		if err := viperInstance.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return decode(viperInstance)
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	viperInstance := newViper(afero.NewMemMapFs())
	viperInstance.SetConfigType("yaml")

	if err := viperInstance.ReadConfig(strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return decode(viperInstance)
}

// Discover returns the project config file under root, or "" when there is none.
func Discover(fs afero.Fs, root string) string {
	path := filepath.Join(root, constants.ConfigFilename)
	if ok, err := afero.Exists(fs, path); err != nil || !ok {
		return ""
	}
	return path
}

func newViper(fs afero.Fs) *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetFs(fs)

	defaults := DefaultConfig()
	viperInstance.SetDefault("include_dir", defaults.IncludeDir)
	viperInstance.SetDefault("suppressions", defaults.Suppressions)
	viperInstance.SetDefault("correlation", defaults.Correlation)
	viperInstance.SetDefault("no_color", defaults.NoColor)
	viperInstance.SetDefault("logging.level", defaults.Logging.Level)
	viperInstance.SetDefault("logging.path", defaults.Logging.Path)
	viperInstance.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	viperInstance.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viperInstance.SetDefault("logging.max_age", defaults.Logging.MaxAge)

	viperInstance.SetEnvPrefix(constants.EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	return viperInstance
}

func decode(viperInstance *viper.Viper) (*Config, error) {
	var config Config
	if err := viperInstance.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate performs config validation
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if _, err := selector.LookupCorrelator(c.Correlation); err != nil {
		return err
	}
	if c.Logging.MaxSize < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAge < 0 {
		return errors.New("logging rotation values cannot be negative")
	}
	return nil
}
