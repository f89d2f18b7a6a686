package normalize

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/handiism/tagtidy/internal/audio"
	"github.com/handiism/tagtidy/internal/config"
	"github.com/handiism/tagtidy/internal/infer"
	ioutils "github.com/handiism/tagtidy/internal/io"
	"github.com/handiism/tagtidy/internal/model"
	"github.com/handiism/tagtidy/internal/reconcile"
	"github.com/handiism/tagtidy/internal/tui"
)

// AlbumReport summarizes the normalization of one album folder.
type AlbumReport struct {
	Dir    string
	Album  string
	Artist string

	// Tracks is the number of readable tracks in the final pass.
	Tracks int

	// Renamed is the number of track files that were renamed.
	Renamed int

	// Skips lists every file left out of a step, and why.
	Skips model.Skips

	// Numbering is the track-number check; zero for empty folders.
	Numbering Numbering
}

// Complete reports whether the folder reached its canonical state: the
// folder could be listed and every readable track was rewritten and
// renamed. Unreadable tracks do not count against it. An incomplete folder
// must not be marked, so the next run retries it.
func (r *AlbumReport) Complete() bool {
	return !r.Skips.Has(model.StageList, model.StageWrite, model.StageRename)
}

// Processor normalizes one album folder: title reconciliation, album and
// artist inference, tag rewrite and canonical rename, numbering check.
type Processor struct {
	settings   *config.Settings
	store      audio.TagStore
	console    tui.Console
	recorder   Recorder
	reconciler *reconcile.Engine
	inferrer   *infer.Engine
	playlist   *audio.PlaylistCreator

	onProgress func(ProgressEvent)
}

// NewProcessor creates a Processor. recorder and onProgress may be nil.
func NewProcessor(settings *config.Settings, store audio.TagStore, console tui.Console, recorder Recorder, onProgress func(ProgressEvent)) *Processor {
	return &Processor{
		settings: settings,
		store:    store,
		console:  console,
		recorder: recorder,
		reconciler: reconcile.NewEngine(store, console, reconcile.Options{
			Extension:   settings.AudioExtension,
			ColumnWidth: settings.TitleColumnWidth,
		}),
		inferrer:   infer.NewEngine(console),
		playlist:   audio.NewPlaylistCreator(settings.ToPlaylistFormat(), settings.M3UExtended),
		onProgress: onProgress,
	}
}

// Process normalizes the folder dir.
//
// Per-file failures are recorded in the report and never stop the folder.
// An error is returned only when the operator console fails or ctx is
// cancelled; the folder must then not be marked complete.
func (p *Processor) Process(ctx context.Context, dir string) (*AlbumReport, error) {
	report := &AlbumReport{Dir: dir}

	if tracks := p.readTracks(dir, report); len(tracks) == 0 {
		p.progress(ProgressEvent{Message: fmt.Sprintf("No readable %s tracks in %s", p.settings.AudioExtension, dir), Level: LevelWarning})
		return report, nil
	}

	rec, err := p.reconciler.Run(dir)
	if rec != nil {
		for _, s := range rec.Skips.List() {
			p.skip(report, s)
		}
	}
	if err != nil {
		return report, fmt.Errorf("reconcile titles: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	tracks := p.readTracks(dir, report)
	inferred, err := p.inferrer.Infer(dir, tracks)
	if err != nil {
		return report, fmt.Errorf("infer album and artist: %w", err)
	}
	report.Album, report.Artist = inferred.Album, inferred.Artist
	if err := ctx.Err(); err != nil {
		return report, err
	}

	final, numbers := p.apply(dir, inferred, report)
	report.Tracks = len(final)

	report.Numbering = CheckNumbering(numbers, len(final))
	if !report.Numbering.OK() {
		p.warnNumbering(report)
	}

	if p.settings.CreatePlaylist {
		p.writePlaylist(ctx, report, final)
	}

	if p.recorder != nil {
		if err := p.recorder.RecordAlbum(dir, report.Album, report.Artist, report.Tracks, report.Numbering.OK()); err != nil {
			p.progress(ProgressEvent{Message: fmt.Sprintf("Could not record %s in history: %v", dir, err), Level: LevelWarning})
		}
	}

	return report, nil
}

// apply writes the folder-wide album and artist into every track and
// renames each file to its canonical name. It returns the tracks that
// could be read and their numeric track numbers.
func (p *Processor) apply(dir string, inferred infer.Result, report *AlbumReport) ([]*model.Track, []int) {
	var tracks []*model.Track
	var numbers []int
	var pending []*rename

	for _, track := range p.readTracks(dir, report) {
		tracks = append(tracks, track)
		if n, ok := track.TrackNumber(); ok {
			numbers = append(numbers, n)
		}

		track.Album = inferred.Album
		track.Artist = inferred.Artist
		if err := audio.WriteTrack(p.store, track); err != nil {
			p.skip(report, model.Skip{Path: track.Path, Stage: model.StageWrite, Reason: err})
			continue
		}

		target := track.CanonicalPath(p.settings.AudioExtension)
		if ioutils.SameName(track.FileName(), filepath.Base(target)) {
			continue
		}
		pending = append(pending, &rename{track: track, from: track.Path, target: target})
	}

	p.renameAll(dir, pending, report)
	return tracks, numbers
}

// rename is one planned track rename.
type rename struct {
	track  *model.Track
	from   string
	target string
	parked bool
	failed bool
}

// renameAll moves every track to its target in two phases. A track whose
// target is the current name of another track that is itself being
// renamed is first parked under a temporary name, so swaps and chains of
// names resolve. Any other existing target is a collision: the track is
// skipped and keeps its original name.
func (p *Processor) renameAll(dir string, pending []*rename, report *AlbumReport) {
	moving := make(map[string]bool, len(pending))
	for _, r := range pending {
		moving[ioutils.NameKey(filepath.Base(r.from))] = true
	}

	for i, r := range pending {
		if !moving[ioutils.NameKey(filepath.Base(r.target))] {
			continue
		}
		parked := filepath.Join(dir, fmt.Sprintf(".tagtidy-%d-%s", i, filepath.Base(r.from)))
		if err := ioutils.Rename(r.from, parked); err != nil {
			r.failed = true
			p.skip(report, model.Skip{Path: r.from, Stage: model.StageRename, Reason: err})
			continue
		}
		r.track.Path = parked
		r.parked = true
	}

	// Direct renames go first; they free the names parked tracks target.
	for _, r := range pending {
		if !r.failed && !r.parked {
			p.commit(dir, r, report)
		}
	}
	for _, r := range pending {
		if r.parked {
			p.commit(dir, r, report)
		}
	}
}

// commit moves one track to its target. A parked track whose target is
// taken goes back to its original name.
func (p *Processor) commit(dir string, r *rename, report *AlbumReport) {
	if err := ioutils.Rename(r.track.Path, r.target); err != nil {
		p.skip(report, model.Skip{Path: r.from, Stage: model.StageRename, Reason: err})
		if r.parked {
			if err := ioutils.Rename(r.track.Path, r.from); err == nil {
				r.track.Path = r.from
			}
		}
		return
	}
	r.track.Path = r.target
	report.Renamed++

	from, to := filepath.Base(r.from), r.track.FileName()
	p.progress(ProgressEvent{Message: fmt.Sprintf("Renamed %s to %s", from, to), Level: LevelVerbose})
	if p.recorder != nil {
		if err := p.recorder.RecordRename(dir, from, to); err != nil {
			p.progress(ProgressEvent{Message: fmt.Sprintf("Could not record rename of %s: %v", from, err), Level: LevelWarning})
		}
	}
}

// readTracks reads every track file of dir in file-name order. Unreadable
// files are recorded as skips and left out.
func (p *Processor) readTracks(dir string, report *AlbumReport) []*model.Track {
	files, err := ioutils.ListFiles(dir, p.settings.AudioExtension)
	if err != nil {
		p.skip(report, model.Skip{Path: dir, Stage: model.StageList, Reason: err})
		return nil
	}

	tracks := make([]*model.Track, 0, len(files))
	for _, path := range files {
		track, err := audio.ReadTrack(p.store, path)
		if err != nil {
			p.skip(report, model.Skip{Path: path, Stage: model.StageRead, Reason: err})
			continue
		}
		tracks = append(tracks, track)
	}
	return tracks
}

// warnNumbering prints the missing-track banner.
func (p *Processor) warnNumbering(report *AlbumReport) {
	line := fmt.Sprintf("missing song in %s by %s %s", report.Album, report.Artist, strings.Repeat("~", 47))
	for i := 0; i < p.settings.WarningRepeat; i++ {
		p.console.Print(tui.Warning(line))
	}
	p.console.Print(tui.Warning(report.Numbering.String()))

	p.progress(ProgressEvent{Message: fmt.Sprintf("Track numbers of %s are not contiguous: %s", report.Dir, report.Numbering), Level: LevelWarning})
}

func (p *Processor) writePlaylist(ctx context.Context, report *AlbumReport, tracks []*model.Track) {
	album := model.NewAlbum(report.Dir)
	album.Title = report.Album
	album.Artist = report.Artist
	album.Tracks = append([]*model.Track(nil), tracks...)
	sort.Slice(album.Tracks, func(i, j int) bool {
		return album.Tracks[i].FileName() < album.Tracks[j].FileName()
	})

	format := p.settings.ToPlaylistFormat()
	path := audio.PlaylistPath(album, format)
	if err := ioutils.WriteFile(ctx, path, []byte(p.playlist.CreatePlaylist(album))); err != nil {
		p.skip(report, model.Skip{Path: path, Stage: model.StagePlaylist, Reason: err})
		return
	}
	p.progress(ProgressEvent{Message: fmt.Sprintf("Playlist created: %s", filepath.Base(path)), Level: LevelVerbose})
}

// skip records a per-file failure once and reports it.
func (p *Processor) skip(report *AlbumReport, s model.Skip) {
	if report.Skips.Add(s) {
		p.progress(ProgressEvent{Message: fmt.Sprintf("Skipped %s: %s failed: %v", s.Path, s.Stage, s.Reason), Level: LevelWarning})
	}
}

func (p *Processor) progress(event ProgressEvent) {
	if p.onProgress != nil {
		p.onProgress(event)
	}
}
