// Package model defines the core data structures used throughout
// the tagtidy application.
//
// # Track
//
// Track is the canonical record of one audio file, built fresh from its
// tag block every time the file is inspected:
//
//	track := model.NewTrack("Artist", "Album", "3 Days", "7", "/music/Album/x.mp3")
//	fmt.Println(track.Number)               // "07"
//	fmt.Println(track.Title)                // "_3 Days"
//	fmt.Println(track.CanonicalName(".mp3")) // "07_3 Days.mp3"
//
// # Album
//
// Album represents one album folder. Its completion flag lives in the
// folder name itself:
//
//	album := model.NewAlbum("/music/Album")
//	if !album.IsComplete("_done") {
//	    // normalize, then rename to album.CompletedPath("_done")
//	}
//
// # Playlist Formats
//
// PlaylistFormat selects the playlist written next to normalized tracks:
// M3U, PLS, WPL or ZPL.
package model
