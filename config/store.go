// Package config persists the OpenWeatherMap API key and decides which key a
// command should use.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the credential file kept in the user's home directory
const FileName = ".weather.cfg"

// ErrNotFound is returned by Read when no credential file exists
var ErrNotFound = errors.New("config file not found")

// Store reads and writes the credential file
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns ~/.weather.cfg
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Path returns the file the store uses
func (s *Store) Path() string {
	return s.path
}

// Write replaces the file contents with the credential, verbatim
func (s *Store) Write(credential string) error {
	if err := os.WriteFile(s.path, []byte(credential), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Read returns the first line of the file
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
