package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// DefaultExportDirName is the directory, relative to the application root,
// that galleries are exported to unless configured otherwise.
const DefaultExportDirName = "public"

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Settings holds all configuration options.
type Settings struct {
	// Export settings
	ExportDirectory string `json:"export_directory" yaml:"export_directory"`

	// Output settings
	Verbose   bool   `json:"verbose" yaml:"verbose"`
	LogFormat string `json:"log_format" yaml:"log_format"` // text, json

	// Inventory settings
	ShowInventory       bool `json:"show_inventory" yaml:"show_inventory"`
	MaxConcurrentProbes int  `json:"max_concurrent_probes" yaml:"max_concurrent_probes"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ExportDirectory:     DefaultExportDirectory(),
		Verbose:             false,
		LogFormat:           LogFormatText,
		ShowInventory:       false,
		MaxConcurrentProbes: 4,
	}
}

// ApplicationRoot returns the directory containing the running executable,
// with symlinks resolved. It falls back to the working directory, and to "."
// when neither can be determined.
func ApplicationRoot() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// DefaultExportDirectory returns <application-root>/public.
func DefaultExportDirectory() string {
	return filepath.Join(ApplicationRoot(), DefaultExportDirName)
}

// Load reads settings from a JSON or YAML file.
//
// A missing file is not an error: the defaults are returned. Fields absent
// from the file keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ProbeLimit returns the number of photos probed concurrently, at least 1.
func (s *Settings) ProbeLimit() int {
	if s.MaxConcurrentProbes < 1 {
		return 1
	}
	return s.MaxConcurrentProbes
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
