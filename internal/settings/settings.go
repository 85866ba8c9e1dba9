// Package settings loads and saves the user settings
// of the tableview command.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/domonda/go-tableview"
)

// MaxRecentFiles is the number of recently opened files that are remembered.
const MaxRecentFiles = 5

// ErrNoRecentFile is returned for a recent file number without entry.
var ErrNoRecentFile = errors.New("no recent file with this number")

// Settings represents the persisted user preferences
type Settings struct {
	// Number of decimal places of numbers, nil for the default
	DecimalPlaces *int `yaml:"decimal_places,omitempty"`

	// Text displayed for missing values
	MissingMarker string `yaml:"missing_marker,omitempty"`

	// Default color mode (auto, always, never)
	Color string `yaml:"color,omitempty"`

	// Recently opened files, most recent first
	RecentFiles []string `yaml:"recent_files,omitempty"`
}

// pathFunc is the function used to get the default settings path
// It can be overridden for testing
var pathFunc = defaultPath

// SetPathFunc sets the settings path function for testing.
// Returns the original function so it can be restored.
func SetPathFunc(fn func() (string, error)) func() (string, error) {
	orig := pathFunc
	pathFunc = fn
	return orig
}

// defaultPath returns ~/.config/tableview/settings.yaml
func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tableview", "settings.yaml"), nil
}

// DefaultPath returns ~/.config/tableview/settings.yaml
func DefaultPath() (string, error) {
	return pathFunc()
}

// Load loads settings from the default path, returns empty settings if not found
func Load() (*Settings, error) {
	path, err := DefaultPath()
	if err != nil {
		return &Settings{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads settings from a specific path
func LoadFromPath(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid settings file: %w", err)
	}
	if _, err := s.FormatPolicy(); err != nil {
		return nil, fmt.Errorf("invalid settings file: %w", err)
	}
	return &s, nil
}

// Save saves settings to the default path
func (s *Settings) Save() error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return s.SaveToPath(path)
}

// SaveToPath saves settings to a specific path
func (s *Settings) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// FormatPolicy returns tableview.DefaultFormatPolicy
// with the configured values applied.
func (s *Settings) FormatPolicy() (tableview.FormatPolicy, error) {
	policy := tableview.DefaultFormatPolicy()
	if s.DecimalPlaces != nil {
		policy.DecimalPlaces = *s.DecimalPlaces
	}
	if s.MissingMarker != "" {
		policy.MissingMarker = s.MissingMarker
	}
	return policy, policy.Validate()
}

// AddRecentFile puts path in front of RecentFiles,
// removing an earlier entry of the same path and
// entries beyond MaxRecentFiles.
func (s *Settings) AddRecentFile(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	files := slices.DeleteFunc(slices.Clone(s.RecentFiles), func(f string) bool { return f == path })
	files = append([]string{path}, files...)
	if len(files) > MaxRecentFiles {
		files = files[:MaxRecentFiles]
	}
	s.RecentFiles = files
}

// RecentFile returns entry n of RecentFiles,
// where 1 is the most recently opened file.
func (s *Settings) RecentFile(n int) (string, error) {
	if n < 1 || n > len(s.RecentFiles) {
		return "", fmt.Errorf("%w: %d of %d", ErrNoRecentFile, n, len(s.RecentFiles))
	}
	return s.RecentFiles[n-1], nil
}
