// Package reconcile implements the interactive title reconciliation
// protocol run on an album folder before any renaming.
//
// The operator sees every track's title next to its file name and track
// number, then either accepts the titles, bulk-trims a substring off all of
// them (optionally starting from the file names), or overrides titles one
// track at a time. Only the title field of the tag is written; files are
// never renamed here.
//
// The protocol is an explicit state machine:
//
//	Listing -> AwaitApproval -> (Done | ChooseSource -> Trimming <-> Trimming -> PerTrackReview <-> PerTrackReview -> Done)
package reconcile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/tagtidy/internal/audio"
	ioutils "github.com/handiism/tagtidy/internal/io"
	"github.com/handiism/tagtidy/internal/model"
	"github.com/handiism/tagtidy/internal/tui"
)

// Prompts shown by the engine.
const (
	PromptTitlesGood = "Are the titles good? (y/n):"
	PromptUseName    = "Set titles to file name before trim? (y/n):"
	PromptTrim       = "Do you want to trim a string off of the titles? (y/n):"
	PromptTrimString = "string to trim:"
	PromptAllGood    = "All good? (y/n):"
	PromptTitleOK    = "song title ok? (y/n):"
	PromptNewTitle   = "input title:"
)

// State is a step of the reconciliation protocol.
type State int

const (
	StateListing State = iota
	StateAwaitApproval
	StateChooseSource
	StateTrimming
	StatePerTrackReview
	StateDone
)

func (s State) String() string {
	switch s {
	case StateListing:
		return "listing"
	case StateAwaitApproval:
		return "await-approval"
	case StateChooseSource:
		return "choose-source"
	case StateTrimming:
		return "trimming"
	case StatePerTrackReview:
		return "per-track-review"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Options configures the engine.
type Options struct {
	// Extension is the track file extension, including the dot.
	Extension string

	// ColumnWidth is the width titles are padded to in the listing.
	ColumnWidth int
}

// Result summarizes one run of the protocol.
type Result struct {
	// Approved is true when the titles were accepted without changes.
	Approved bool

	// Trims is the number of trim passes applied.
	Trims int

	// Overrides is the number of titles replaced individually.
	Overrides int

	// Skips lists files that could not be read or written.
	Skips model.Skips
}

// Engine runs the title reconciliation protocol over one folder.
type Engine struct {
	store   audio.TagStore
	console tui.Console
	opts    Options
}

// NewEngine creates an Engine.
func NewEngine(store audio.TagStore, console tui.Console, opts Options) *Engine {
	return &Engine{store: store, console: console, opts: opts}
}

// run holds the per-folder protocol state.
type run struct {
	dir     string
	state   State
	useName bool
	result  *Result
}

// Run drives the protocol for the folder dir until the operator is
// satisfied. It only returns an error when console input fails.
func (e *Engine) Run(dir string) (*Result, error) {
	r := &run{dir: dir, state: StateListing, result: &Result{}}

	for r.state != StateDone {
		next, err := e.step(r)
		if err != nil {
			return r.result, err
		}
		r.state = next
	}
	return r.result, nil
}

// step performs the work of the current state and returns the next one.
func (e *Engine) step(r *run) (State, error) {
	switch r.state {
	case StateListing:
		e.list(r)
		return StateAwaitApproval, nil

	case StateAwaitApproval:
		ok, err := tui.Confirm(e.console, PromptTitlesGood)
		if err != nil {
			return r.state, err
		}
		if ok {
			r.result.Approved = true
			return StateDone, nil
		}
		return StateChooseSource, nil

	case StateChooseSource:
		ok, err := tui.Confirm(e.console, PromptUseName)
		if err != nil {
			return r.state, err
		}
		r.useName = ok
		return StateTrimming, nil

	case StateTrimming:
		answer, err := e.console.Prompt(PromptTrim)
		if err != nil {
			return r.state, err
		}
		if answer == "n" {
			e.list(r)
			return StatePerTrackReview, nil
		}
		substr, err := tui.Ask(e.console, PromptTrimString)
		if err != nil {
			return r.state, err
		}
		e.trim(r, substr)
		r.result.Trims++
		e.list(r)
		return StateTrimming, nil

	case StatePerTrackReview:
		ok, err := tui.Confirm(e.console, PromptAllGood)
		if err != nil {
			return r.state, err
		}
		if ok {
			return StateDone, nil
		}
		if err := e.review(r); err != nil {
			return r.state, err
		}
		e.list(r)
		return StatePerTrackReview, nil
	}

	return StateDone, nil
}

// tracks reads every track of the folder fresh from the tag store.
// Unreadable files are recorded as skips and left out.
func (e *Engine) tracks(r *run) []*model.Track {
	files, err := ioutils.ListFiles(r.dir, e.opts.Extension)
	if err != nil {
		r.result.Skips.Add(model.Skip{Path: r.dir, Stage: model.StageList, Reason: err})
		return nil
	}

	tracks := make([]*model.Track, 0, len(files))
	for _, path := range files {
		track, err := audio.ReadTrack(e.store, path)
		if err != nil {
			r.result.Skips.Add(model.Skip{Path: path, Stage: model.StageRead, Reason: err})
			continue
		}
		tracks = append(tracks, track)
	}
	return tracks
}

// list prints every title padded to the column width, with its track
// number and file name.
func (e *Engine) list(r *run) {
	e.console.Print("")
	e.console.Print(tui.Header("Titles in " + r.dir))
	for _, t := range e.tracks(r) {
		e.console.Print(fmt.Sprintf("Title: %s %s File name: '%s'",
			tui.PadRight("'"+t.Title+"'", e.opts.ColumnWidth), t.Number, t.FileName()))
	}
	e.console.Print("")
}

// trim rewrites every title: start from the raw tag title (or the file
// name without extension when useName is set), remove every occurrence of
// substr, and trim surrounding whitespace.
func (e *Engine) trim(r *run, substr string) {
	files, err := ioutils.ListFiles(r.dir, e.opts.Extension)
	if err != nil {
		r.result.Skips.Add(model.Skip{Path: r.dir, Stage: model.StageList, Reason: err})
		return
	}

	for _, path := range files {
		fields, err := e.store.Read(path)
		if err != nil {
			r.result.Skips.Add(model.Skip{Path: path, Stage: model.StageRead, Reason: err})
			continue
		}

		title := fields.Title
		if r.useName {
			name := filepath.Base(path)
			title = strings.TrimSuffix(name, filepath.Ext(name))
		}
		title = TrimTitle(title, substr)

		if err := e.store.Write(path, audio.Fields{Title: title}); err != nil {
			r.result.Skips.Add(model.Skip{Path: path, Stage: model.StageWrite, Reason: err})
		}
	}
}

// review walks every track and lets the operator replace its title.
func (e *Engine) review(r *run) error {
	for _, t := range e.tracks(r) {
		e.console.Print("")
		e.console.Print(tui.Box(t.String()))
		e.console.Print("")

		ok, err := tui.Confirm(e.console, PromptTitleOK)
		if err != nil {
			return err
		}
		if ok {
			continue
		}

		title, err := tui.Ask(e.console, PromptNewTitle)
		if err != nil {
			return err
		}
		if title == "" {
			e.console.Print(tui.Dim("empty title, keeping the current one"))
			continue
		}
		if err := e.store.Write(t.Path, audio.Fields{Title: title}); err != nil {
			r.result.Skips.Add(model.Skip{Path: t.Path, Stage: model.StageWrite, Reason: err})
			continue
		}
		r.result.Overrides++
	}
	return nil
}

// TrimTitle removes every occurrence of substr from title and trims
// surrounding whitespace. An empty substr only trims.
func TrimTitle(title, substr string) string {
	title = strings.TrimSpace(title)
	if substr != "" {
		title = strings.ReplaceAll(title, substr, "")
	}
	return strings.TrimSpace(title)
}
