// Package config provides configuration management for the gallery exporter.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Locating the application root used for the default export directory
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Exports to <application-root>/public
//	// Text log output, inventory summary disabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/gallery.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
//
// # Saving Settings
//
//	settings.ExportDirectory = "/srv/www/gallery"
//	err := settings.Save("/path/to/gallery.json")
//
// Saving is atomic: readers never observe a half-written file.
package config
