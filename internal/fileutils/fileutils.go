// Package fileutils provides the file checks used when opening input documents.
package fileutils

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotExist is returned by OpenInput for a missing path.
var ErrNotExist = errors.New("file does not exist")

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// OpenInput opens a regular file for reading. Missing paths wrap ErrNotExist;
// directories are rejected.
func OpenInput(filePath string) (*os.File, error) {
	info, err := os.Stat(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotExist, filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("error checking %s: %w", filePath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, expected a file", filePath)
	}

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}
