package audio

import (
	"fmt"

	"github.com/bogem/id3v2"
)

// Fields holds the tag values tagtidy reads and writes.
//
// An empty string means the field is absent (on read) or must be left
// unchanged (on write).
type Fields struct {
	Title       string
	Artist      string
	Album       string
	TrackNumber string
}

// TagStore is a per-file key/value accessor for the tag block.
//
// Read returns empty strings for absent fields. Write persists only the
// non-empty Title, Artist and Album of update; the track number is never
// written. Both return an error when the tag block cannot be opened,
// parsed or saved.
type TagStore interface {
	Read(path string) (Fields, error)
	Write(path string, update Fields) error
}

// ID3Store is a TagStore backed by ID3v2 tags.
//
// ID3Store uses the id3v2 library to read and write MP3 metadata:
//   - TIT2 (title), TPE1 (artist), TALB (album)
//   - TRCK (track number, read only)
//
// Files are probed before they are opened, so a FLAC, Ogg or MP4 file that
// merely carries the audio extension is refused with ErrUnsupportedFormat
// instead of receiving an ID3 block.
//
// Example:
//
//	store := NewID3Store()
//	fields, err := store.Read("/music/Album/01.mp3")
//	if err != nil {
//	    log.Printf("unreadable: %v", err)
//	}
//	err = store.Write("/music/Album/01.mp3", Fields{Title: "New Title"})
type ID3Store struct{}

// NewID3Store creates a new ID3Store.
func NewID3Store() *ID3Store {
	return &ID3Store{}
}

// Read returns the title, artist, album and track number of the file at path.
func (s *ID3Store) Read(path string) (Fields, error) {
	if err := Probe(path); err != nil {
		return Fields{}, err
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return Fields{}, fmt.Errorf("open tag: %w", err)
	}
	defer tag.Close()

	return Fields{
		Title:       tag.Title(),
		Artist:      tag.Artist(),
		Album:       tag.Album(),
		TrackNumber: tag.GetTextFrame(tag.CommonID("Track number/Position in set")).Text,
	}, nil
}

// Write updates the non-empty string fields of update and saves the tag.
//
// This method:
//  1. Opens the existing tag (an untagged file gets a fresh ID3v2.4 tag)
//  2. Sets TIT2, TPE1 and TALB for each non-empty field
//  3. Saves the tag in place
func (s *ID3Store) Write(path string, update Fields) error {
	if err := Probe(path); err != nil {
		return err
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tag: %w", err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	if update.Title != "" {
		tag.SetTitle(update.Title)
	}
	if update.Artist != "" {
		tag.SetArtist(update.Artist)
	}
	if update.Album != "" {
		tag.SetAlbum(update.Album)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag: %w", err)
	}
	return nil
}
