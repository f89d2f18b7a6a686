package audio

import (
	"github.com/handiism/tagtidy/internal/model"
)

// ReadTrack builds the canonical Track for the file at path.
//
// Absent fields become model.Unknown and the number/title normalization
// rules of model.NewTrack are applied. When the tag block cannot be read
// the error is returned and no Track is produced; callers treat such a
// file as absent from every aggregate.
func ReadTrack(store TagStore, path string) (*model.Track, error) {
	fields, err := store.Read(path)
	if err != nil {
		return nil, err
	}
	return model.NewTrack(fields.Artist, fields.Album, fields.Title, fields.TrackNumber, path), nil
}

// WriteTrack persists the track's title, artist and album.
func WriteTrack(store TagStore, track *model.Track) error {
	return store.Write(track.Path, Fields{
		Title:  track.Title,
		Artist: track.Artist,
		Album:  track.Album,
	})
}
