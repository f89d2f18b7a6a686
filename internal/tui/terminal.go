package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Terminal is a Console that reads each answer with a small Bubble Tea
// program hosting a text input. Plain output is written straight through.
//
// Each Prompt runs its own program, so the terminal is only in raw mode
// while an answer is being typed.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal creates a Terminal reading from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Print writes text followed by a newline.
func (t *Terminal) Print(text string) {
	fmt.Fprintln(t.out, text)
}

// Prompt shows text next to a text input and returns the entered line.
//
// Ctrl+C and Esc abort with ErrInputClosed. After the answer is submitted
// the question and answer are echoed as a normal line so the transcript
// stays readable.
func (t *Terminal) Prompt(text string) (string, error) {
	p := tea.NewProgram(newPromptModel(text), tea.WithInput(t.in), tea.WithOutput(t.out))

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok || m.aborted {
		return "", ErrInputClosed
	}

	fmt.Fprintln(t.out, promptStyle.Render(text)+m.input.Value())
	return m.input.Value(), nil
}

// promptModel is the Bubble Tea model for a single prompt.
type promptModel struct {
	label   string
	input   textinput.Model
	done    bool
	aborted bool
}

func newPromptModel(label string) promptModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Focus()

	return promptModel{label: label, input: ti}
}

// Init initializes the model.
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and forwards everything else to the input.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt; it is cleared once an answer is submitted.
func (m promptModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return promptStyle.Render(m.label) + m.input.View()
}
