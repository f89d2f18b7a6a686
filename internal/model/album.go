package model

import (
	"path/filepath"
	"strings"
)

// Album represents one album folder on disk.
//
// An album folder is a directory holding zero or more track files. Its
// completion flag is encoded in its own name: a folder whose name ends with
// the completion marker (for example "_done") has already been normalized
// and is skipped on later runs.
//
// Example:
//
//	album := NewAlbum("/music/Abbey Road")
//	album.IsComplete("_done")        // false
//	album.CompletedPath("_done")     // "/music/Abbey Road_done"
type Album struct {
	// Path is the folder location.
	Path string

	// Name is the folder's base name.
	Name string

	// Artist and Title are the folder-wide values confirmed by the operator.
	// Both are empty until inference has run.
	Artist string
	Title  string

	// Tracks are the readable tracks of the folder in file-name order.
	Tracks []*Track
}

// NewAlbum creates an Album for the folder at path.
func NewAlbum(path string) *Album {
	return &Album{
		Path: path,
		Name: filepath.Base(path),
	}
}

// IsComplete reports whether the folder name carries the completion marker.
func (a *Album) IsComplete(marker string) bool {
	return IsCompleteName(a.Name, marker)
}

// CompletedPath returns the folder path with the completion marker appended.
func (a *Album) CompletedPath(marker string) string {
	return filepath.Join(filepath.Dir(a.Path), a.Name+marker)
}

// IsCompleteName reports whether a folder name ends with marker.
// An empty marker never matches, so nothing is ever considered complete.
func IsCompleteName(name, marker string) bool {
	return marker != "" && strings.HasSuffix(name, marker)
}

// PlaylistFormat selects the playlist written into a normalized folder.
type PlaylistFormat int

const (
	PlaylistFormatM3U PlaylistFormat = iota
	PlaylistFormatPLS
	PlaylistFormatWPL // Windows Media Player
	PlaylistFormatZPL // Zune
)

var playlistFormatNames = map[PlaylistFormat]string{
	PlaylistFormatM3U: "m3u",
	PlaylistFormatPLS: "pls",
	PlaylistFormatWPL: "wpl",
	PlaylistFormatZPL: "zpl",
}

// ParsePlaylistFormat maps a config value (m3u, pls, wpl, zpl, any case)
// to a PlaylistFormat. Unknown values fall back to M3U.
func ParsePlaylistFormat(s string) PlaylistFormat {
	for pf, name := range playlistFormatNames {
		if strings.EqualFold(s, name) {
			return pf
		}
	}
	return PlaylistFormatM3U
}

// String returns the config name of the format.
func (pf PlaylistFormat) String() string {
	if name, ok := playlistFormatNames[pf]; ok {
		return name
	}
	return playlistFormatNames[PlaylistFormatM3U]
}

// Extension returns the playlist file extension, for example ".pls".
func (pf PlaylistFormat) Extension() string {
	return "." + pf.String()
}
