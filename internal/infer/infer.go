package infer

import (
	"fmt"
	"strings"

	"github.com/handiism/tagtidy/internal/model"
	"github.com/handiism/tagtidy/internal/tui"
	"github.com/hbollon/go-edlib"
	"github.com/olekukonko/tablewriter"
)

// Prompts shown when no candidate is accepted.
const (
	PromptArtist = "what is the artist?:"
	PromptAlbum  = "what is the album?:"
)

// Result is the folder-wide album and artist.
type Result struct {
	Album  string
	Artist string

	// AlbumConfirmed and ArtistConfirmed are true when the operator
	// accepted the inferred candidate instead of typing a value.
	AlbumConfirmed  bool
	ArtistConfirmed bool
}

// Engine infers the album and artist of a folder with operator
// confirmation.
type Engine struct {
	console tui.Console
}

// NewEngine creates an Engine that talks to the operator through console.
func NewEngine(console tui.Console) *Engine {
	return &Engine{console: console}
}

// Infer proposes the most frequent artist and album of tracks. A rejected
// candidate is replaced by free text typed after the frequency table, the
// file names and the folder path are shown.
func (e *Engine) Infer(dir string, tracks []*model.Track) (Result, error) {
	artists, albums := Tables(tracks)

	var res Result
	var err error

	res.Artist, res.ArtistConfirmed, err = e.resolve("artist", PromptArtist, dir, tracks, artists)
	if err != nil {
		return res, err
	}
	res.Album, res.AlbumConfirmed, err = e.resolve("album", PromptAlbum, dir, tracks, albums)
	if err != nil {
		return res, err
	}
	return res, nil
}

func (e *Engine) resolve(field, prompt, dir string, tracks []*model.Track, table *FrequencyTable) (string, bool, error) {
	candidate, _, ok := table.Top()
	if ok {
		yes, err := tui.Confirm(e.console, fmt.Sprintf("is %s '%s'? (y/n):", field, candidate))
		if err != nil {
			return "", false, err
		}
		if yes {
			return candidate, true, nil
		}
		e.console.Print(RenderTable(field, candidate, table))
	}

	e.console.Print("")
	for _, t := range tracks {
		e.console.Print(t.FileName())
	}
	e.console.Print("")
	e.console.Print(dir)

	value, err := tui.Ask(e.console, prompt)
	if err != nil {
		return "", false, err
	}
	return value, false, nil
}

// RenderTable formats table under a line saying how many tracks carry
// candidate, with one row per value: the value, its count and its
// Jaro-Winkler similarity to candidate, which makes spelling variants of the
// same name stand out.
func RenderTable(field, candidate string, table *FrequencyTable) string {
	var sb strings.Builder

	entries := table.Entries()
	total := 0
	for _, entry := range entries {
		total += entry.Count
	}
	fmt.Fprintf(&sb, "%s '%s' is on %d of %d tracks\n", field, candidate, table.Count(candidate), total)

	w := tablewriter.NewWriter(&sb)
	w.SetHeader([]string{field, "count", "similarity"})
	w.SetAutoWrapText(false)
	w.SetAutoFormatHeaders(false)
	for _, entry := range entries {
		w.Append([]string{entry.Value, fmt.Sprint(entry.Count), similarity(candidate, entry.Value)})
	}
	w.Render()

	return strings.TrimRight(sb.String(), "\n")
}

func similarity(a, b string) string {
	sim, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", sim)
}
