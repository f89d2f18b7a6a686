// Package ioutils provides file system utilities for tagtidy.
//
// This package contains functions for:
//   - Sorted directory and track listings
//   - Validated renames
//   - Filename sanitization
//
// # Listing
//
//	entries, err := ioutils.ListDir("/music")          // every entry, sorted
//	files, err := ioutils.ListFiles("/music/Album", ".mp3") // tracks only
//
// # Renaming
//
// Rename refuses to overwrite a different file:
//
//	err := ioutils.Rename(oldPath, newPath)
//	if errors.Is(err, ioutils.ErrTargetExists) {
//	    // two tracks normalize to the same name; leave this one alone
//	}
//
// # Filename Sanitization
//
// SanitizeFileName replaces characters that are unsafe in file names with
// readable substitutes:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song; Part 1~~2"
package ioutils
