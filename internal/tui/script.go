package tui

import "strings"

// Script is a Console that answers prompts from a fixed list and records
// everything written to it. It drives the interactive engines in tests.
type Script struct {
	answers []string
	prompts []string
	out     strings.Builder
}

// NewScript creates a Script that answers prompts with answers, in order.
func NewScript(answers ...string) *Script {
	return &Script{answers: answers}
}

// Print records text followed by a newline.
func (s *Script) Print(text string) {
	s.out.WriteString(text)
	s.out.WriteString("\n")
}

// Prompt records text and returns the next scripted answer, or
// ErrInputClosed when the script is exhausted.
func (s *Script) Prompt(text string) (string, error) {
	s.prompts = append(s.prompts, text)
	s.out.WriteString(text)
	if len(s.answers) == 0 {
		s.out.WriteString("\n")
		return "", ErrInputClosed
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	s.out.WriteString(answer + "\n")
	return answer, nil
}

// Output returns the transcript so far.
func (s *Script) Output() string {
	return s.out.String()
}

// Prompts returns every prompt text shown so far.
func (s *Script) Prompts() []string {
	return s.prompts
}

// Remaining returns the number of unused answers.
func (s *Script) Remaining() int {
	return len(s.answers)
}
