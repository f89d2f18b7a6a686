// Package config provides configuration management for tagtidy.
//
// This package handles:
//   - Loading and saving settings from YAML files
//   - Default configuration values
//   - Validation
//
// # Default Settings
//
// Use DefaultSettings() to get the defaults:
//
//	settings := config.DefaultSettings()
//	// Tracks are *.mp3 files
//	// Finished folders get the "_done" suffix
//	// No playlist, no history journal
//
// # Loading from File
//
//	settings, err := config.Load("")                    // $XDG_CONFIG_HOME/tagtidy/config.yaml
//	settings, err := config.Load("/path/to/config.yaml") // explicit file
//
// A missing file is not an error; defaults are returned.
//
// # Saving Settings
//
//	settings.CompletionMarker = "_ok"
//	err := settings.Save(config.DefaultPath())
//
// # Configuration Options
//
// Settings includes options for:
//   - Base folder and track file extension
//   - Completion marker and display widths
//   - Playlist generation
//   - History journal location
//   - Logging (file sink, colors, verbosity)
package config
