package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/handiism/tagtidy/internal/audio"
	"github.com/handiism/tagtidy/internal/config"
	"github.com/handiism/tagtidy/internal/history"
	ioutils "github.com/handiism/tagtidy/internal/io"
	"github.com/handiism/tagtidy/internal/logging"
	"github.com/handiism/tagtidy/internal/normalize"
	"github.com/handiism/tagtidy/internal/tui"
)

const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	// Command line flags
	var (
		configFlag         = pflag.String("config", "", "Path to config file (default "+config.DefaultPath()+")")
		markerFlag         = pflag.String("marker", "", "Completion marker appended to finished folders")
		extFlag            = pflag.String("ext", "", "Audio file extension, including the dot")
		playlistFlag       = pflag.Bool("playlist", false, "Write a playlist into every album folder")
		playlistFormatFlag = pflag.String("playlist-format", "", "Playlist format: m3u, pls, wpl or zpl")
		historyFlag        = pflag.String("history", "", "SQLite file recording renames and albums")
		logFileFlag        = pflag.String("log-file", "", "Also write log lines to this file")
		colorFlag          = pflag.String("color", "", "Color output: auto, always or never")
		verboseFlag        = pflag.BoolP("verbose", "v", false, "Show verbose output")
		plainFlag          = pflag.Bool("plain", false, "Read answers line by line instead of the interactive prompt")
		saveConfigFlag     = pflag.Bool("save-config", false, "Save the effective settings to the config file and exit")
		showHistoryFlag    = pflag.Bool("show-history", false, "Print the albums recorded in the history file and exit (with -v, also the renames)")
	)

	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "tagtidy - normalize album folders: titles, artist, album, file names")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  tagtidy [options] [base-folder]")
		fmt.Fprintln(os.Stderr)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	// Load config
	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return exitError
	}

	// Apply flags
	if pflag.CommandLine.Changed("marker") {
		settings.CompletionMarker = *markerFlag
	}
	if pflag.CommandLine.Changed("ext") {
		settings.AudioExtension = *extFlag
	}
	if pflag.CommandLine.Changed("playlist") {
		settings.CreatePlaylist = *playlistFlag
	}
	if pflag.CommandLine.Changed("playlist-format") {
		settings.PlaylistFormat = *playlistFormatFlag
	}
	if pflag.CommandLine.Changed("history") {
		settings.HistoryDB = *historyFlag
	}
	if pflag.CommandLine.Changed("log-file") {
		settings.LogFile = *logFileFlag
	}
	if pflag.CommandLine.Changed("color") {
		settings.Color = config.ColorMode(*colorFlag)
	}
	if *verboseFlag {
		settings.Verbose = true
	}
	if *plainFlag {
		settings.Plain = true
	}
	if pflag.NArg() > 0 {
		settings.BaseDir = pflag.Arg(0)
	}

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings:\n%v\n", err)
		return exitError
	}

	if *saveConfigFlag {
		path := *configFlag
		if path == "" {
			path = config.DefaultPath()
		}
		if err := settings.Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			return exitError
		}
		fmt.Printf("Settings saved to %s\n", path)
		return exitOK
	}

	if *showHistoryFlag {
		return showHistory(settings)
	}

	logger, err := logging.NewLogger(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		return exitError
	}
	defer logger.Close()

	// Handle interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var console tui.Console
	if !settings.Plain && isatty.IsTerminal(os.Stdin.Fd()) {
		console = tui.NewTerminal(os.Stdin, os.Stdout)
	} else {
		console = tui.NewLineConsole(os.Stdin, os.Stdout)
	}

	baseDir := settings.BaseDir
	if baseDir == "" {
		baseDir, err = tui.Ask(console, "Enter the base folder path containing albums: ")
		if err != nil {
			logger.Error("No base folder: %v", err)
			return exitInterrupted
		}
	}

	if !ioutils.IsDir(baseDir) {
		logger.Error("Base folder %s is not a folder", baseDir)
		return exitError
	}

	var recorder normalize.Recorder
	if settings.HistoryDB != "" {
		journal, err := history.Open(settings.HistoryDB)
		if err != nil {
			logger.Error("Could not open history %s: %v", settings.HistoryDB, err)
			return exitError
		}
		defer journal.Close()
		recorder = journal
	}

	onProgress := func(event normalize.ProgressEvent) {
		switch event.Level {
		case normalize.LevelVerbose:
			logger.Verbose("%s", event.Message)
		case normalize.LevelWarning:
			logger.Warn("%s", event.Message)
		case normalize.LevelError:
			logger.Error("%s", event.Message)
		case normalize.LevelSuccess:
			logger.Success("%s", event.Message)
		default:
			logger.Info("%s", event.Message)
		}
	}

	processor := normalize.NewProcessor(settings, audio.NewID3Store(), console, recorder, onProgress)
	walker := normalize.NewWalker(settings, processor, console, onProgress)

	logger.Verbose("Walking %s", baseDir)
	summary, err := walker.Run(ctx, baseDir)
	printSummary(logger, summary)

	if err != nil {
		if errors.Is(err, tui.ErrInputClosed) || errors.Is(err, context.Canceled) {
			logger.Warn("Interrupted, the current folder was left unmarked")
			return exitInterrupted
		}
		logger.Error("%v", err)
		return exitError
	}
	return exitOK
}

func printSummary(logger *logging.Logger, summary *normalize.RunSummary) {
	if summary == nil {
		return
	}

	skipped := 0
	incomplete := 0
	for _, r := range summary.Reports {
		skipped += r.Skips.Len()
		if r.Tracks > 0 && !r.Numbering.OK() {
			incomplete++
			logger.Warn("Check numbering of %s by %s: %s", r.Album, r.Artist, r.Numbering)
		}
	}

	logger.Success("Done: %d folders processed, %d already done, %d errors", summary.Processed, summary.Skipped, summary.Errors)
	if summary.Incomplete > 0 {
		logger.Warn("%d folders were left unmarked and will be retried", summary.Incomplete)
	}
	if skipped > 0 {
		logger.Warn("%d files were skipped, see the warnings above", skipped)
	}
	if incomplete > 0 {
		logger.Warn("%d albums have missing or duplicate track numbers", incomplete)
	}
}

func showHistory(settings *config.Settings) int {
	if settings.HistoryDB == "" {
		fmt.Fprintln(os.Stderr, "No history file configured, set history_db or pass --history")
		return exitError
	}

	journal, err := history.Open(settings.HistoryDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		return exitError
	}
	defer journal.Close()

	if err := journal.WriteReport(os.Stdout, settings.Verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		return exitError
	}
	return exitOK
}
