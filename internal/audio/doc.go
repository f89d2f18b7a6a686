// Package audio provides the tag store and playlist services of tagtidy.
//
// # Tag Store
//
// TagStore is the per-file key/value view of a tag block. ID3Store
// implements it on top of ID3v2:
//
//	store := audio.NewID3Store()
//	track, err := audio.ReadTrack(store, "/music/Album/01.mp3")
//	if err != nil {
//	    // unreadable: leave the file out of every aggregate
//	}
//	track.Album = "Abbey Road"
//	err = audio.WriteTrack(store, track)
//
// Only title, artist and album are ever written; the track number is read
// but never modified.
//
// # Format Probe
//
// Probe refuses files whose tag block is MP4, FLAC or Ogg so that a
// mislabelled file is skipped rather than corrupted.
//
// # Playlist Generation
//
// Generate a playlist for a normalized album:
//
//	creator := audio.NewPlaylistCreator(model.PlaylistFormatM3U, true)
//	content := creator.CreatePlaylist(album)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
