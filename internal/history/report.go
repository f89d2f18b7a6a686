package history

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteReport prints every recorded album as a table. With renames set,
// each album is followed by the track renames recorded for its folder.
func (j *Journal) WriteReport(w io.Writer, renames bool) error {
	albums, err := j.Albums()
	if err != nil {
		return fmt.Errorf("read albums: %w", err)
	}
	if len(albums) == 0 {
		_, err := fmt.Fprintln(w, "No albums recorded yet.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"When", "Album", "Artist", "Tracks", "Numbering", "Folder"})
	table.SetAutoWrapText(false)
	for _, a := range albums {
		numbering := "ok"
		if !a.NumberingOK {
			numbering = "CHECK"
		}
		table.Append([]string{
			a.At.Local().Format("2006-01-02 15:04"),
			a.Album,
			a.Artist,
			fmt.Sprint(a.Tracks),
			numbering,
			a.Dir,
		})
	}
	table.Render()

	if !renames {
		return nil
	}

	seen := make(map[string]bool)
	for _, a := range albums {
		if seen[a.Dir] {
			continue
		}
		seen[a.Dir] = true

		list, err := j.Renames(a.Dir)
		if err != nil {
			return fmt.Errorf("read renames of %s: %w", a.Dir, err)
		}
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", a.Dir)
		for _, r := range list {
			fmt.Fprintf(w, "  %s -> %s\n", r.From, r.To)
		}
	}
	return nil
}
