// Package tui provides the operator console for tagtidy.
//
// Every interactive component talks to the operator through the Console
// interface so it can be driven by a real terminal or by a script:
//
//	var c tui.Console = tui.NewTerminal(os.Stdin, os.Stdout) // bubbletea prompt
//	c = tui.NewLineConsole(os.Stdin, os.Stdout)              // plain line input
//	c = tui.NewScript("y", "n", "Live - ")                   // tests
//
// Answers are returned exactly as typed (without the trailing newline).
// Only the literal "y" counts as yes; see Yes.
package tui

import (
	"errors"
	"strings"
)

// ErrInputClosed is returned by Prompt when no more input can be read:
// end of input, Ctrl+C or Esc in the terminal prompt, or an exhausted script.
var ErrInputClosed = errors.New("console input closed")

// Console is the print/prompt surface used by the interactive engines.
type Console interface {
	// Print writes text followed by a newline.
	Print(text string)

	// Prompt shows text and blocks until the operator enters one line.
	Prompt(text string) (string, error)
}

// Yes reports whether an answer means yes. Only the exact string "y" does;
// anything else, including "Y" and "yes", is no.
func Yes(answer string) bool {
	return answer == "y"
}

// Ask prompts and strips surrounding whitespace from the answer.
func Ask(c Console, text string) (string, error) {
	answer, err := c.Prompt(text)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Confirm prompts with a yes/no question and reports whether the answer was "y".
func Confirm(c Console, text string) (bool, error) {
	answer, err := c.Prompt(text)
	if err != nil {
		return false, err
	}
	return Yes(answer), nil
}
