package config

import (
	"fmt"

	"github.com/wizzomafizzo/gcovaudit/internal/selector"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the default gcovaudit configuration
func DefaultConfig() *Config {
	return &Config{
		Correlation: selector.CorrelationDefault,
		Logging: LoggingConfig{
			Level:      "disabled",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	config := DefaultConfig()
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
