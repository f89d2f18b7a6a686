package audio

import (
	"fmt"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/tagtidy/internal/io"
	"github.com/handiism/tagtidy/internal/model"
)

// PlaylistCreator renders the playlist of a normalized album folder.
//
// Entries are the album's tracks by their final file names, so a playlist
// is only meaningful after the rename pass. Paths are bare file names
// because the playlist is saved inside the album folder.
//
// Example:
//
//	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true)
//	content := creator.CreatePlaylist(album)
//	// #EXTM3U
//	// #EXTINF:-1,Artist - Song Title
//	// 01Song Title.mp3
type PlaylistCreator struct {
	format   model.PlaylistFormat
	extended bool // M3U only: write #EXTINF lines
}

// NewPlaylistCreator creates a PlaylistCreator. extended only affects M3U.
func NewPlaylistCreator(format model.PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{format: format, extended: extended}
}

// PlaylistPath returns where the playlist for album is saved: the sanitized
// album title plus the format extension, inside the album folder.
func PlaylistPath(album *model.Album, format model.PlaylistFormat) string {
	name := album.Title
	if name == "" {
		name = album.Name
	}
	return filepath.Join(album.Path, ioutils.SanitizeFileName(name)+format.Extension())
}

// playlistEntry is one line of a playlist.
type playlistEntry struct {
	file   string
	title  string
	artist string
}

func entriesOf(album *model.Album) []playlistEntry {
	entries := make([]playlistEntry, len(album.Tracks))
	for i, t := range album.Tracks {
		entries[i] = playlistEntry{file: t.FileName(), title: t.Title, artist: t.Artist}
	}
	return entries
}

// CreatePlaylist renders the playlist for album in the configured format.
func (p *PlaylistCreator) CreatePlaylist(album *model.Album) string {
	entries := entriesOf(album)

	var sb strings.Builder
	switch p.format {
	case model.PlaylistFormatPLS:
		writePLS(&sb, entries)
	case model.PlaylistFormatWPL:
		writeSMIL(&sb, "wpl", "1.0", album, nil, func(e playlistEntry) string {
			return fmt.Sprintf(`src="%s"`, xmlEscaper.Replace(e.file))
		})
	case model.PlaylistFormatZPL:
		meta := []string{
			`<meta name="Generator" content="tagtidy"/>`,
			fmt.Sprintf(`<meta name="ItemCount" content="%d"/>`, len(entries)),
		}
		writeSMIL(&sb, "zpl", "2.0", album, meta, func(e playlistEntry) string {
			return fmt.Sprintf(`src="%s" albumTitle="%s" albumArtist="%s" trackTitle="%s" trackArtist="%s"`,
				xmlEscaper.Replace(e.file),
				xmlEscaper.Replace(album.Title),
				xmlEscaper.Replace(album.Artist),
				xmlEscaper.Replace(e.title),
				xmlEscaper.Replace(e.artist))
		})
	default:
		writeM3U(&sb, entries, p.extended)
	}
	return sb.String()
}

// writeM3U writes one file name per line, each preceded by an
// "#EXTINF:-1,Artist - Title" line in extended mode.
func writeM3U(sb *strings.Builder, entries []playlistEntry, extended bool) {
	if extended {
		sb.WriteString("#EXTM3U\n")
	}
	for _, e := range entries {
		if extended {
			fmt.Fprintf(sb, "#EXTINF:-1,%s - %s\n", e.artist, e.title)
		}
		sb.WriteString(e.file + "\n")
	}
}

// writePLS writes a version 2 PLS file. Lengths are -1 since durations are
// never read.
func writePLS(sb *strings.Builder, entries []playlistEntry) {
	sb.WriteString("[playlist]\n")
	for i, e := range entries {
		n := i + 1
		fmt.Fprintf(sb, "File%d=%s\nTitle%d=%s\nLength%d=-1\n", n, e.file, n, e.title, n)
	}
	fmt.Fprintf(sb, "NumberOfEntries=%d\nVersion=2\n", len(entries))
}

// writeSMIL writes the SMIL document shared by WPL and ZPL.
func writeSMIL(sb *strings.Builder, kind, version string, album *model.Album, meta []string, media func(playlistEntry) string) {
	fmt.Fprintf(sb, "<?%s version=\"%s\"?>\n<smil>\n  <head>\n", kind, version)
	fmt.Fprintf(sb, "    <title>%s</title>\n", xmlEscaper.Replace(album.Title))
	for _, m := range meta {
		sb.WriteString("    " + m + "\n")
	}
	sb.WriteString("  </head>\n  <body>\n    <seq>\n")
	for _, e := range entriesOf(album) {
		sb.WriteString("      <media " + media(e) + "/>\n")
	}
	sb.WriteString("    </seq>\n  </body>\n</smil>\n")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)
