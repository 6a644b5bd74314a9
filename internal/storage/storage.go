// Package storage provides XDG-compliant storage path management for gcovaudit.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/gcovaudit/internal/constants"
)

// Manager resolves gcovaudit's own state locations on an injected filesystem
type Manager struct {
	fs afero.Fs
}

// New creates a new storage manager with the given filesystem
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetStateDir returns the XDG state directory for gcovaudit, creating it if necessary
func (m *Manager) GetStateDir() (string, error) {
	stateDir := filepath.Join(xdg.StateHome, constants.AppName)
	err := m.fs.MkdirAll(stateDir, 0o750)
	if err != nil {
		return "", fmt.Errorf("failed to create state directory %s: %w", stateDir, err)
	}
	return stateDir, nil
}

// GetLogPath returns the full path to the default gcovaudit log file
func (m *Manager) GetLogPath() (string, error) {
	stateDir, err := m.GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, constants.LogFilename), nil
}
