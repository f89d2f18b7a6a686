package model

import "fmt"

// Stage names the step at which a file was skipped.
type Stage string

const (
	StageList     Stage = "list"
	StageRead     Stage = "read"
	StageWrite    Stage = "write"
	StageRename   Stage = "rename"
	StagePlaylist Stage = "playlist"
)

// Skip records a file that was left out of an operation, and why.
type Skip struct {
	Path   string
	Stage  Stage
	Reason error
}

// String formats the skip for logs.
func (s Skip) String() string {
	return fmt.Sprintf("%s failed for %s: %v", s.Stage, s.Path, s.Reason)
}

// Skips is an ordered set of skips, keyed by path and stage, so a file
// that fails on every pass is reported once.
type Skips struct {
	list []Skip
	seen map[string]bool
}

// Add records a skip unless one for the same path and stage exists.
// It reports whether the skip was new.
func (s *Skips) Add(skip Skip) bool {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	key := string(skip.Stage) + "\x00" + skip.Path
	if s.seen[key] {
		return false
	}
	s.seen[key] = true
	s.list = append(s.list, skip)
	return true
}

// List returns the skips in the order they were first recorded.
func (s *Skips) List() []Skip {
	return s.list
}

// Has reports whether any skip was recorded at one of stages.
func (s *Skips) Has(stages ...Stage) bool {
	for _, skip := range s.list {
		for _, stage := range stages {
			if skip.Stage == stage {
				return true
			}
		}
	}
	return false
}

// Len returns the number of recorded skips.
func (s *Skips) Len() int {
	return len(s.list)
}
