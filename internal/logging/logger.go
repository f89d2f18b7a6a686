// Package logging provides the leveled, optionally colored logger used by
// the tagtidy command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/handiism/tagtidy/internal/config"
)

// Level is the severity of a log line.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the tag printed between brackets.
func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "DEBUG"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelSuccess:
		return "SUCCESS"
	default:
		return "INFO"
	}
}

var levelColors = map[Level]*color.Color{
	LevelInfo:    color.New(color.FgHiBlue, color.Bold),
	LevelVerbose: color.New(color.FgHiCyan),
	LevelWarning: color.New(color.FgHiYellow, color.Bold),
	LevelError:   color.New(color.FgHiRed, color.Bold),
	LevelSuccess: color.New(color.FgHiGreen, color.Bold),
}

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	file    *os.File
	verbose bool
	now     func() time.Time
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Settings) (*Logger, error) {
	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
	// ColorAuto keeps fatih/color's own detection (TTY, NO_COLOR, TERM=dumb).

	l := New(color.Output, color.Error, cfg.Verbose)

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// New creates a Logger writing to out (and errOut for errors) without a file sink.
func New(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{out: out, errOut: errOut, verbose: verbose, now: time.Now}
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Log writes one line at level. Verbose lines are dropped unless the
// logger is verbose.
func (l *Logger) Log(level Level, format string, args ...interface{}) {
	if level == LevelVerbose && !l.verbose {
		return
	}

	text := fmt.Sprintf(format, args...)
	ts := l.now().Format("2006-01-02 15:04:05")
	tag := "[" + level.String() + "]"

	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.out
	if level == LevelError {
		out = l.errOut
	}
	_, _ = io.WriteString(out, ts+" "+levelColors[level].Sprint(tag)+" "+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" "+tag+" "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) { l.Log(LevelInfo, format, args...) }

// Verbose logs at DEBUG level (cyan), only when verbose.
func (l *Logger) Verbose(format string, args ...interface{}) { l.Log(LevelVerbose, format, args...) }

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) { l.Log(LevelWarning, format, args...) }

// Error logs at ERROR level (red), to the error writer.
func (l *Logger) Error(format string, args ...interface{}) { l.Log(LevelError, format, args...) }

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) { l.Log(LevelSuccess, format, args...) }
