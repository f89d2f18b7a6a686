package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestYes(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", false},
		{"yes", false},
		{" y", false},
		{"n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			if got := Yes(tt.answer); got != tt.want {
				t.Errorf("Yes(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestScript(t *testing.T) {
	s := NewScript("first", "second")
	s.Print("hello")

	a, err := s.Prompt("q1: ")
	if err != nil || a != "first" {
		t.Fatalf("Prompt = (%q, %v), want (first, nil)", a, err)
	}
	b, _ := s.Prompt("q2: ")
	if b != "second" {
		t.Errorf("Prompt = %q, want second", b)
	}
	if _, err := s.Prompt("q3: "); !errors.Is(err, ErrInputClosed) {
		t.Errorf("exhausted script error = %v, want ErrInputClosed", err)
	}

	if got := strings.Join(s.Prompts(), "|"); got != "q1: |q2: |q3: " {
		t.Errorf("Prompts() = %q", got)
	}
	if !strings.HasPrefix(s.Output(), "hello\nq1: first\n") {
		t.Errorf("Output() = %q", s.Output())
	}
}

func TestAskAndConfirm(t *testing.T) {
	s := NewScript("  padded  ", "y", "yes")

	got, err := Ask(s, "name: ")
	if err != nil || got != "padded" {
		t.Errorf("Ask = (%q, %v), want (padded, nil)", got, err)
	}
	if ok, _ := Confirm(s, "ok? "); !ok {
		t.Error("Confirm(y) should be true")
	}
	if ok, _ := Confirm(s, "ok? "); ok {
		t.Error("Confirm(yes) should be false")
	}
}

func TestLineConsole(t *testing.T) {
	var out bytes.Buffer
	c := NewLineConsole(strings.NewReader("one\r\n two \nlast"), &out)

	want := []string{"one", " two ", "last"}
	for _, w := range want {
		got, err := c.Prompt("> ")
		if err != nil {
			t.Fatalf("Prompt: %v", err)
		}
		if got != w {
			t.Errorf("Prompt = %q, want %q", got, w)
		}
	}
	if _, err := c.Prompt("> "); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Prompt at EOF error = %v, want ErrInputClosed", err)
	}

	c.Print("done")
	if !strings.HasSuffix(out.String(), "done\n") {
		t.Errorf("output = %q", out.String())
	}
}

func TestPromptModel(t *testing.T) {
	var m tea.Model = newPromptModel("title? ")

	for _, r := range "ok" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	pm := m.(promptModel)
	if !pm.done || pm.aborted {
		t.Fatalf("after enter: done=%v aborted=%v", pm.done, pm.aborted)
	}
	if pm.input.Value() != "ok" {
		t.Errorf("value = %q, want ok", pm.input.Value())
	}
	if cmd == nil {
		t.Error("enter should return a quit command")
	}
	if pm.View() != "" {
		t.Errorf("View() after submit = %q, want empty", pm.View())
	}
}

func TestPromptModel_Abort(t *testing.T) {
	var m tea.Model = newPromptModel("title? ")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if !m.(promptModel).aborted {
		t.Error("esc should abort the prompt")
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  int
	}{
		{"abc", 6, 6},
		{"abcdef", 3, 6},
		{"日本", 6, 6},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got := PadRight(tt.s, tt.width)
			if w := lipgloss.Width(got); w != tt.want {
				t.Errorf("width of PadRight(%q, %d) = %d, want %d", tt.s, tt.width, w, tt.want)
			}
		})
	}
}
