package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// ErrUnsupportedFormat is returned for files whose tag block is not ID3.
var ErrUnsupportedFormat = errors.New("unsupported tag format")

// Probe checks that the file at path is something ID3Store may touch.
//
// Files identified as MP4, FLAC or Ogg are refused. Files with an ID3 tag
// and files without any recognizable tag (a bare MP3 stream) pass.
func Probe(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	format, fileType, err := tag.Identify(f)
	if err != nil {
		// Nothing recognizable; let the ID3 reader decide.
		return nil
	}

	switch format {
	case tag.UnknownFormat, tag.ID3v1, tag.ID3v2_2, tag.ID3v2_3, tag.ID3v2_4:
		return nil
	default:
		return fmt.Errorf("%w: %s %s", ErrUnsupportedFormat, fileType, format)
	}
}
