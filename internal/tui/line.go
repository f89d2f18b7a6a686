package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineConsole is a Console over plain line-oriented streams. It is used
// when input is piped or when the operator asks for --plain.
type LineConsole struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLineConsole creates a LineConsole reading lines from in.
func NewLineConsole(in io.Reader, out io.Writer) *LineConsole {
	return &LineConsole{r: bufio.NewReader(in), out: out}
}

// Print writes text followed by a newline.
func (c *LineConsole) Print(text string) {
	fmt.Fprintln(c.out, text)
}

// Prompt writes text and reads one line. A final line without a trailing
// newline is still returned; reading past the end gives ErrInputClosed.
func (c *LineConsole) Prompt(text string) (string, error) {
	fmt.Fprint(c.out, text)

	line, err := c.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
