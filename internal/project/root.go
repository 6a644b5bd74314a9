// Package project provides utilities for detecting project root directories.
package project

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/gcovaudit/internal/constants"
)

// markers identify the top of a C++ or Go source tree.
var markers = []string{".git", "CMakeLists.txt", "meson.build", "go.mod"}

// FindRoot finds the project root directory starting from startDir.
// GCOVAUDIT_PROJECT_DIR wins when it names an existing directory; otherwise
// the nearest ancestor holding a project marker is used, falling back to startDir.
func FindRoot(fs afero.Fs, startDir string) string {
	if root, found := checkProjectDirEnv(fs); found {
		return root
	}
	if root, found := FindProjectMarkerFrom(fs, startDir); found {
		return root
	}
	return startDir
}

// FindProjectMarkerFrom returns the nearest ancestor of startDir, inclusive,
// that holds a project marker.
func FindProjectMarkerFrom(fs afero.Fs, startDir string) (string, bool) {
	currentDir := startDir

	for {
		if hasProjectMarker(fs, currentDir) {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)

		// Stop if we've reached the filesystem root
		if parentDir == currentDir {
			break
		}

		currentDir = parentDir
	}

	return "", false
}

// checkProjectDirEnv checks if GCOVAUDIT_PROJECT_DIR is set and valid
func checkProjectDirEnv(fs afero.Fs) (string, bool) {
	dir := os.Getenv(constants.ProjectDirEnv)
	if dir == "" {
		return "", false
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	if ok, err := afero.DirExists(fs, abs); err != nil || !ok {
		return "", false
	}

	return abs, true
}

// hasProjectMarker checks if any of the markers exist in the directory
func hasProjectMarker(fs afero.Fs, dir string) bool {
	for _, marker := range markers {
		if _, err := fs.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
