// Package audiotest provides fixtures for tests that need real tagged files.
package audiotest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/handiism/tagtidy/internal/audio"
)

// ErrInjected is returned by FailingStore for the files it is told to fail.
var ErrInjected = errors.New("injected tag failure")

// frames stands in for MPEG audio data. It is long enough for format
// probes that look at the last 128 bytes of a file.
var frames = bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 64)

// WriteMP3 creates dir/name as an MP3 stub carrying an ID3v2.4 tag with the
// non-empty fields of f, and returns its path.
func WriteMP3(t testing.TB, dir, name string, f audio.Fields) string {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	if f.Title != "" {
		tag.SetTitle(f.Title)
	}
	if f.Artist != "" {
		tag.SetArtist(f.Artist)
	}
	if f.Album != "" {
		tag.SetAlbum(f.Album)
	}
	if f.TrackNumber != "" {
		tag.AddTextFrame(tag.CommonID("Track number/Position in set"), id3v2.EncodingUTF8, f.TrackNumber)
	}

	var buf bytes.Buffer
	if _, err := tag.WriteTo(&buf); err != nil {
		t.Fatalf("write tag for %s: %v", name, err)
	}
	buf.Write(frames)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteFile creates dir/name with arbitrary content and returns its path.
func WriteFile(t testing.TB, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFields reads the tag of path with a fresh ID3Store, failing the test on error.
func ReadFields(t testing.TB, path string) audio.Fields {
	t.Helper()
	fields, err := audio.NewID3Store().Read(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return fields
}

// FailingStore wraps a TagStore and fails reads or writes for chosen file
// names (base names, so the failure follows a file across renames of its
// folder).
type FailingStore struct {
	audio.TagStore
	FailRead  map[string]bool
	FailWrite map[string]bool
}

// NewFailingStore wraps an ID3Store.
func NewFailingStore() *FailingStore {
	return &FailingStore{
		TagStore:  audio.NewID3Store(),
		FailRead:  make(map[string]bool),
		FailWrite: make(map[string]bool),
	}
}

func (s *FailingStore) Read(path string) (audio.Fields, error) {
	if s.FailRead[filepath.Base(path)] {
		return audio.Fields{}, ErrInjected
	}
	return s.TagStore.Read(path)
}

func (s *FailingStore) Write(path string, update audio.Fields) error {
	if s.FailWrite[filepath.Base(path)] {
		return ErrInjected
	}
	return s.TagStore.Write(path, update)
}
