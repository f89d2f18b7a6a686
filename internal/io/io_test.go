package ioutils

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal title", "normal title"},
		{"time: 10:30", "time; 10;30"},
		{"AC/DC", "AC~~DC"},
		{"Why?", "Why(question)"},
		{"<intro>", "(less than)intro(greater than)"},
		{`back\slash`, "back(backslash)slash"},
		{"a|b", "a(pipe)b"},
		{"*starred*", "(asterisk)starred(asterisk)"},
		{`say "hi"`, "say _hi_"},
		{`all :/?<>\|*"`, "all ;~~(question)(less than)(greater than)(backslash)(pipe)(asterisk)_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFileName_SafeAndIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		`????`,
		`<<>>//\\||**""::`,
		"mixed: <a> / b? | c* \"d\" \\ e",
		"unicode ✓ / café?",
	}

	for _, in := range inputs {
		once := SanitizeFileName(in)
		if strings.ContainsAny(once, UnsafeFileNameChars) {
			t.Errorf("SanitizeFileName(%q) = %q still contains unsafe characters", in, once)
		}
		if twice := SanitizeFileName(once); twice != once {
			t.Errorf("SanitizeFileName not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestListDir_Sorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp3", "a.mp3", "c.txt"} {
		writeFile(t, filepath.Join(dir, name))
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	entries, err := ListDir(dir)
	if err != nil {
		t.Fatalf("ListDir: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	if got, want := strings.Join(names, ","), "a.mp3,b.mp3,c.txt,sub"; got != want {
		t.Errorf("ListDir names = %q, want %q", got, want)
	}
	if !entries[3].IsDir {
		t.Error("sub should be reported as a directory")
	}
}

func TestListFiles_FiltersExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"02.mp3", "01.MP3", "cover.jpg", "list.m3u"} {
		writeFile(t, filepath.Join(dir, name))
	}
	if err := os.Mkdir(filepath.Join(dir, "dir.mp3"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := ListFiles(dir, ".mp3")
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("ListFiles returned %d files, want 2: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "01.MP3" || filepath.Base(files[1]) != "02.mp3" {
		t.Errorf("ListFiles = %v, want [01.MP3 02.mp3]", files)
	}
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old.mp3")
	dst := filepath.Join(dir, "new.mp3")
	writeFile(t, src)

	if err := Rename(src, dst); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("destination missing after rename: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("source still present after rename")
	}
}

func TestRename_SameNameIsNoop(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "same.mp3")
	writeFile(t, src)

	if err := Rename(src, src); err != nil {
		t.Errorf("Rename onto itself: %v", err)
	}
}

func TestRename_RefusesCollision(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mp3")
	dst := filepath.Join(dir, "b.mp3")
	writeFile(t, src)
	writeFile(t, dst)

	err := Rename(src, dst)
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("Rename error = %v, want ErrTargetExists", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source must be untouched after a refused rename: %v", err)
	}
}

func TestSameName_NFC(t *testing.T) {
	composed := "caf\u00e9.mp3"
	decomposed := "cafe\u0301.mp3"
	if !SameName(composed, decomposed) {
		t.Error("composed and decomposed forms should compare equal")
	}
	if SameName("a.mp3", "b.mp3") {
		t.Error("different names should not compare equal")
	}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.m3u")

	if err := WriteFile(context.Background(), path, []byte("#EXTM3U\n")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "#EXTM3U\n" {
		t.Errorf("content = %q", data)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	other := filepath.Join(t.TempDir(), "other.m3u")
	if err := WriteFile(ctx, other, []byte("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("WriteFile with cancelled ctx = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(other); !os.IsNotExist(err) {
		t.Error("file written after cancellation")
	}
}
