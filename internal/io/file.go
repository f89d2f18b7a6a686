// Package ioutils provides file system utilities for tagtidy.
//
// This package contains functions for:
//   - Listing album folders and their track files in sorted order
//   - Validated renames that never overwrite another file
//   - File writing
//   - Filename sanitization
package ioutils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrTargetExists is returned by Rename when the destination is already
// taken by a different file or folder.
var ErrTargetExists = errors.New("target already exists")

// Entry is one item of a sorted directory listing.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// ListDir returns the entries of dir sorted by name.
//
// The OS returns entries in arbitrary order; everything in tagtidy works on
// the sorted listing so runs are reproducible.
func ListDir(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			// Follow links so a linked album folder is still an album.
			if info, err := os.Stat(filepath.Join(dir, de.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, Entry{
			Name:  de.Name(),
			Path:  filepath.Join(dir, de.Name()),
			IsDir: isDir,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// ListFiles returns the regular files in dir whose extension matches ext
// (case-insensitive), sorted by file name.
//
// Example:
//
//	files, err := ListFiles("/music/Abbey Road", ".mp3")
//	// ["/music/Abbey Road/01Come Together.mp3", ...]
func ListFiles(dir, ext string) ([]string, error) {
	entries, err := ListDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir || !strings.EqualFold(filepath.Ext(e.Name), ext) {
			continue
		}
		files = append(files, e.Path)
	}
	return files, nil
}

// SameName reports whether two file names are equal after Unicode NFC
// normalization. File systems such as HFS+ hand back decomposed (NFD)
// names, which would otherwise never match a computed name.
func SameName(a, b string) bool {
	return NameKey(a) == NameKey(b)
}

// NameKey returns the NFC form of a file name, for use as a map key when
// names from the file system are compared with computed ones.
func NameKey(name string) string {
	return norm.NFC.String(name)
}

// Rename moves src to dst within the same parent folder.
//
// The rename is validated before it is committed:
//   - if src and dst name the same entry (after NFC normalization) nothing happens
//   - if dst exists and is not the same file as src, ErrTargetExists is returned
//
// A case-only rename on a case-insensitive file system is allowed because
// dst and src then resolve to the same file.
func Rename(src, dst string) error {
	if filepath.Dir(src) == filepath.Dir(dst) && SameName(filepath.Base(src), filepath.Base(dst)) {
		return nil
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if dstInfo, err := os.Stat(dst); err == nil {
		if !os.SameFile(srcInfo, dstInfo) {
			return fmt.Errorf("rename %s: %w: %s", filepath.Base(src), ErrTargetExists, filepath.Base(dst))
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	return os.Rename(src, dst)
}

// WriteFile writes data to path with mode 0644, truncating an existing
// file. Nothing is written once ctx is done.
//
// Example:
//
//	err := WriteFile(ctx, "/music/Album/Album.m3u", []byte("#EXTM3U\n..."))
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
