package normalize

import (
	"context"
	"fmt"

	"github.com/handiism/tagtidy/internal/config"
	ioutils "github.com/handiism/tagtidy/internal/io"
	"github.com/handiism/tagtidy/internal/model"
	"github.com/handiism/tagtidy/internal/tui"
)

// RunSummary summarizes one walk over a base folder.
type RunSummary struct {
	// Processed is the number of album folders normalized and marked.
	Processed int

	// Skipped is the number of folders already carrying the marker.
	Skipped int

	// Incomplete is the number of folders left unmarked because a track
	// could not be rewritten or renamed, or the folder could not be listed.
	Incomplete int

	// Errors counts entries that are not folders and folders that could
	// not be marked.
	Errors int

	// Reports holds one report per processed folder, in walk order.
	Reports []*AlbumReport
}

// Walker drives the Processor over every album folder of a base folder.
type Walker struct {
	processor *Processor
	console   tui.Console
	marker    string

	onProgress func(ProgressEvent)
}

// NewWalker creates a Walker. onProgress may be nil.
func NewWalker(settings *config.Settings, processor *Processor, console tui.Console, onProgress func(ProgressEvent)) *Walker {
	return &Walker{
		processor:  processor,
		console:    console,
		marker:     settings.CompletionMarker,
		onProgress: onProgress,
	}
}

// Run visits the entries of baseDir in name order. Non-folders are
// reported and skipped, folders carrying the completion marker are
// skipped, every other folder is processed and then renamed with the
// marker appended. A folder whose report is not Complete keeps its name.
//
// Run stops early, leaving the current folder unmarked, when ctx is
// cancelled or the operator console fails; the summary so far is returned
// with the error.
func (w *Walker) Run(ctx context.Context, baseDir string) (*RunSummary, error) {
	summary := &RunSummary{}

	entries, err := ioutils.ListDir(baseDir)
	if err != nil {
		return summary, fmt.Errorf("list %s: %w", baseDir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		w.console.Print("")
		w.console.Print("")
		w.console.Print(tui.Header("album path: " + entry.Path))
		w.console.Print("")

		if !entry.IsDir {
			summary.Errors++
			w.progress(ProgressEvent{Message: fmt.Sprintf("Not a folder, skipping: %s", entry.Path), Level: LevelError})
			continue
		}

		album := model.NewAlbum(entry.Path)
		if album.IsComplete(w.marker) {
			summary.Skipped++
			w.progress(ProgressEvent{Message: fmt.Sprintf("Already done: %s", entry.Name), Level: LevelVerbose})
			continue
		}

		report, err := w.processor.Process(ctx, album.Path)
		if err != nil {
			return summary, fmt.Errorf("process %s: %w", entry.Name, err)
		}
		summary.Reports = append(summary.Reports, report)

		if !report.Complete() {
			summary.Incomplete++
			w.console.Print(tui.Warning(fmt.Sprintf("Folder '%s' left unmarked, it will be retried on the next run", entry.Name)))
			w.progress(ProgressEvent{Message: fmt.Sprintf("Not marking %s: %d skipped files", entry.Name, report.Skips.Len()), Level: LevelWarning})
			continue
		}

		done := album.CompletedPath(w.marker)
		if err := ioutils.Rename(album.Path, done); err != nil {
			summary.Errors++
			w.progress(ProgressEvent{Message: fmt.Sprintf("Could not mark %s as done: %v", entry.Name, err), Level: LevelError})
			continue
		}
		report.Dir = done
		summary.Processed++

		w.console.Print(fmt.Sprintf("Renamed folder '%s' to '%s'", entry.Name, album.Name+w.marker))
		w.progress(ProgressEvent{Message: fmt.Sprintf("Finished %s: %d tracks, %d renamed, %d skipped", entry.Name, report.Tracks, report.Renamed, report.Skips.Len()), Level: LevelSuccess})
	}

	return summary, nil
}

func (w *Walker) progress(event ProgressEvent) {
	if w.onProgress != nil {
		w.onProgress(event)
	}
}
