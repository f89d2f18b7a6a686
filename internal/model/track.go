package model

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	ioutils "github.com/handiism/tagtidy/internal/io"
)

// Unknown is the value used for any tag field that is absent from a file.
const Unknown = "Unknown"

// Track is the canonical in-memory record of one audio file.
//
// Track contains the metadata needed to reconcile and rename one file:
//   - Artist, Album and Title as read from the tag block
//   - Number, the textual track number, zero-padded to two digits
//   - Path, the current location of the backing file
//
// A Track is built fresh from the tag block every time a file is inspected
// via NewTrack. The backing file is the durable state, never the record.
//
// Example:
//
//	track := NewTrack("The Beatles", "Abbey Road", "Something", "2", "/music/ar/b.mp3")
//	// track.Number = "02"
//	// track.CanonicalName(".mp3") = "02Something.mp3"
type Track struct {
	// Artist is the contributing artist.
	Artist string

	// Album is the album title.
	Album string

	// Title is the track title. A title starting with a digit is stored
	// with a leading underscore so it cannot be mistaken for part of the
	// track number in a file name.
	Title string

	// Number is the track number as text. Single digits are zero-padded.
	Number string

	// Path is the current location of the backing file. It is updated
	// in place whenever the file is renamed.
	Path string
}

// NewTrack creates a new Track, applying the canonical normalization rules.
//
// Parameters:
//   - artist, album, title: tag values; empty means absent and becomes Unknown
//   - number: raw track number text; empty means absent and becomes Unknown
//   - path: location of the backing file
//
// The number is padded to two digits when it is a single digit, and the
// title gains a leading underscore when it starts with a digit.
func NewTrack(artist, album, title, number, path string) *Track {
	return &Track{
		Artist: orUnknown(artist),
		Album:  orUnknown(album),
		Title:  NormalizeTitle(orUnknown(title)),
		Number: NormalizeNumber(orUnknown(number)),
		Path:   path,
	}
}

// NormalizeNumber zero-pads a track number from 1 to 9 ("3" -> "03").
// Any other value is returned unchanged.
func NormalizeNumber(number string) string {
	if len(number) == 1 && number[0] >= '1' && number[0] <= '9' {
		return "0" + number
	}
	return number
}

// NormalizeTitle prefixes a title starting with a digit with an underscore
// ("3 Days" -> "_3 Days"). Already prefixed titles start with "_" and are
// left alone, so the rule is idempotent.
func NormalizeTitle(title string) string {
	for _, r := range title {
		if unicode.IsDigit(r) {
			return "_" + title
		}
		break
	}
	return title
}

// TrackNumber parses the leading integer of Number.
//
// "03" and "3/12" both yield 3. The second result is false when Number
// does not start with an integer (for example Unknown).
func (t *Track) TrackNumber() (int, bool) {
	num := t.Number
	if i := strings.IndexByte(num, '/'); i >= 0 {
		num = num[:i]
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return 0, false
	}
	return n, true
}

// CanonicalName returns the file name the track should have on disk:
// {number}{title}{ext}, with both number and title passed through
// ioutils.SanitizeFileName.
func (t *Track) CanonicalName(ext string) string {
	return ioutils.SanitizeFileName(strings.TrimSpace(t.Number)) +
		ioutils.SanitizeFileName(strings.TrimSpace(t.Title)) + ext
}

// CanonicalPath returns the canonical file name located in the track's folder.
func (t *Track) CanonicalPath(ext string) string {
	return filepath.Join(t.Dir(), t.CanonicalName(ext))
}

// FileName returns the base name of the track's backing file.
func (t *Track) FileName() string {
	return filepath.Base(t.Path)
}

// Dir returns the folder holding the track's backing file.
func (t *Track) Dir() string {
	return filepath.Dir(t.Path)
}

// String describes the track the way it is shown during review.
func (t *Track) String() string {
	return fmt.Sprintf("'%s' by %s from album '%s' (%s)", t.Title, t.Artist, t.Album, t.Path)
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
