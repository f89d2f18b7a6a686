package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v2"

	"github.com/handiism/tagtidy/internal/model"
)

// configRelPath is the config file location relative to the XDG config home.
const configRelPath = "tagtidy/config.yaml"

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Settings holds all configuration options.
type Settings struct {
	// Input
	BaseDir        string `yaml:"base_dir"`
	AudioExtension string `yaml:"audio_extension"`

	// Normalization
	CompletionMarker string `yaml:"completion_marker"`
	TitleColumnWidth int    `yaml:"title_column_width"`
	WarningRepeat    int    `yaml:"warning_repeat"`

	// Playlist settings
	CreatePlaylist bool   `yaml:"create_playlist"`
	PlaylistFormat string `yaml:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended    bool   `yaml:"m3u_extended"`

	// History journal; empty disables it
	HistoryDB string `yaml:"history_db"`

	// Output
	LogFile string    `yaml:"log_file"`
	Color   ColorMode `yaml:"color"`
	Verbose bool      `yaml:"verbose"`
	Plain   bool      `yaml:"plain"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		AudioExtension: ".mp3",

		CompletionMarker: "_done",
		TitleColumnWidth: 50,
		WarningRepeat:    7,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,

		Color: ColorAuto,
	}
}

// DefaultPath returns the config file path under the XDG config home,
// for example ~/.config/tagtidy/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, configRelPath)
}

// Load reads settings from a YAML file. A missing file yields defaults.
// An empty path looks the file up in the XDG config directories.
func Load(path string) (*Settings, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(configRelPath)
		if err != nil {
			return DefaultSettings(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a YAML file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks for invalid or conflicting settings.
func (s *Settings) Validate() error {
	var errs []error

	if !strings.HasPrefix(s.AudioExtension, ".") || len(s.AudioExtension) < 2 {
		errs = append(errs, fmt.Errorf("audio_extension must start with a dot, got %q", s.AudioExtension))
	}
	if s.CompletionMarker == "" {
		errs = append(errs, errors.New("completion_marker must not be empty"))
	}
	if strings.ContainsAny(s.CompletionMarker, `/\`) {
		errs = append(errs, fmt.Errorf("completion_marker must not contain path separators, got %q", s.CompletionMarker))
	}
	if s.TitleColumnWidth < 0 {
		errs = append(errs, fmt.Errorf("title_column_width must be >= 0, got %d", s.TitleColumnWidth))
	}
	if s.WarningRepeat < 1 {
		errs = append(errs, fmt.Errorf("warning_repeat must be >= 1, got %d", s.WarningRepeat))
	}
	switch strings.ToLower(s.PlaylistFormat) {
	case "m3u", "pls", "wpl", "zpl":
	default:
		errs = append(errs, fmt.Errorf("playlist_format must be m3u, pls, wpl or zpl, got %q", s.PlaylistFormat))
	}
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color must be auto, always or never, got %q", s.Color))
	}

	return errors.Join(errs...)
}

// ToPlaylistFormat converts the playlist_format setting.
func (s *Settings) ToPlaylistFormat() model.PlaylistFormat {
	return model.ParsePlaylistFormat(s.PlaylistFormat)
}
