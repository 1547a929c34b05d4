// Package fileutil provides whole-file text I/O helpers.
package fileutil

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for file utility operations.
var ErrEmptyPath = errors.New("path cannot be empty")

// filePermissions matches the permissions of generated documentation
// output: owner read+write, others read.
const filePermissions = 0o644

// ReadTextFile reads an entire file as a string.
func ReadTextFile(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from directory discovery
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteTextFile replaces the contents of path with content.
func WriteTextFile(path, content string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
