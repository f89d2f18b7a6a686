package model

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1", "01"},
		{"9", "09"},
		{"0", "0"},
		{"10", "10"},
		{"123", "123"},
		{"3/12", "3/12"},
		{"Unknown", "Unknown"},
		{"x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeNumber(tt.input); got != tt.want {
				t.Errorf("NormalizeNumber(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeNumber_Length(t *testing.T) {
	for n := 1; n <= 9; n++ {
		got := NormalizeNumber(string(rune('0' + n)))
		if len(got) != 2 || got[0] != '0' {
			t.Errorf("NormalizeNumber(%d) = %q, want two digits with a leading zero", n, got)
		}
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"3One", "_3One"},
		{"99 Luftballons", "_99 Luftballons"},
		{"One", "One"},
		{"_3One", "_3One"},
		{"", ""},
		{" 3 leading space", " 3 leading space"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeTitle(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := NormalizeTitle(got); again != got {
				t.Errorf("NormalizeTitle is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestNewTrack_Defaults(t *testing.T) {
	track := NewTrack("", "", "", "", "/music/a/x.mp3")

	for name, got := range map[string]string{
		"Artist": track.Artist,
		"Album":  track.Album,
		"Title":  track.Title,
		"Number": track.Number,
	} {
		if got != Unknown {
			t.Errorf("%s = %q, want %q", name, got, Unknown)
		}
	}
}

func TestNewTrack_DigitTitleGainsSinglePrefix(t *testing.T) {
	track := NewTrack("X", "Y", "3One", "3", "/music/Y/a.mp3")
	if track.Title != "_3One" {
		t.Errorf("Title = %q, want %q", track.Title, "_3One")
	}

	// Re-reading a title that was written back must not prefix it again.
	again := NewTrack(track.Artist, track.Album, track.Title, track.Number, track.Path)
	if again.Title != "_3One" {
		t.Errorf("re-normalized Title = %q, want %q", again.Title, "_3One")
	}
	if again.Number != "03" {
		t.Errorf("re-normalized Number = %q, want %q", again.Number, "03")
	}
}

func TestTrack_TrackNumber(t *testing.T) {
	tests := []struct {
		number string
		want   int
		ok     bool
	}{
		{"03", 3, true},
		{"12", 12, true},
		{"3/12", 3, true},
		{"Unknown", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			track := &Track{Number: tt.number}
			got, ok := track.TrackNumber()
			if got != tt.want || ok != tt.ok {
				t.Errorf("TrackNumber() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTrack_CanonicalName(t *testing.T) {
	tests := []struct {
		title  string
		number string
		want   string
	}{
		{"Two", "1", "01Two.mp3"},
		{"3One", "3", "03_3One.mp3"},
		{"What?", "12", "12What(question).mp3"},
		{"  Padded  ", "4", "04Padded.mp3"},
		{"AC/DC: Live", "5", "05AC~~DC; Live.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			track := NewTrack("X", "Y", tt.title, tt.number, "/music/Y/old.mp3")
			if got := track.CanonicalName(".mp3"); got != tt.want {
				t.Errorf("CanonicalName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrack_CanonicalPathStaysInFolder(t *testing.T) {
	track := NewTrack("X", "Y", "a/b", "1", "/music/Y/old.mp3")
	got := track.CanonicalPath(".mp3")
	if !strings.HasPrefix(got, "/music/Y/") || strings.Count(got, "/") != 3 {
		t.Errorf("CanonicalPath() = %q, want a file directly inside /music/Y", got)
	}
}

func TestAlbum_Completion(t *testing.T) {
	album := NewAlbum("/music/Abbey Road")

	if album.IsComplete("_done") {
		t.Error("IsComplete() should be false before marking")
	}
	if got := album.CompletedPath("_done"); got != "/music/Abbey Road_done" {
		t.Errorf("CompletedPath() = %q, want %q", got, "/music/Abbey Road_done")
	}

	marked := NewAlbum(album.CompletedPath("_done"))
	if !marked.IsComplete("_done") {
		t.Error("IsComplete() should be true after marking")
	}
	if IsCompleteName("anything", "") {
		t.Error("an empty marker must never match")
	}
}

func TestPlaylistFormat_Extension(t *testing.T) {
	tests := []struct {
		format PlaylistFormat
		want   string
	}{
		{PlaylistFormatM3U, ".m3u"},
		{PlaylistFormatPLS, ".pls"},
		{PlaylistFormatWPL, ".wpl"},
		{PlaylistFormatZPL, ".zpl"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.Extension(); got != tt.want {
				t.Errorf("Extension() = %q, want %q", got, tt.want)
			}
			if got := ParsePlaylistFormat(tt.want[1:]); got != tt.format {
				t.Errorf("ParsePlaylistFormat(%q) = %v, want %v", tt.want[1:], got, tt.format)
			}
		})
	}
}

func TestSkips(t *testing.T) {
	var skips Skips
	reason := errors.New("boom")

	if !skips.Add(Skip{Path: "/a/1.mp3", Stage: StageRead, Reason: reason}) {
		t.Error("first Add should be new")
	}
	if skips.Add(Skip{Path: "/a/1.mp3", Stage: StageRead, Reason: reason}) {
		t.Error("same path and stage should be deduplicated")
	}
	skips.Add(Skip{Path: "/a/1.mp3", Stage: StageRename, Reason: reason})

	if skips.Len() != 2 {
		t.Errorf("Len() = %d, want 2", skips.Len())
	}
	if !skips.Has(StageRename) || !skips.Has(StageList, StageRead) {
		t.Error("Has should find recorded stages")
	}
	if skips.Has(StageWrite, StageList) {
		t.Error("Has reported a stage that was never recorded")
	}
}
