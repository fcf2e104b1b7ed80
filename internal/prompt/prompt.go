// Package prompt reads answers and command lines from a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt asks questions on w and reads answers from r.
type Prompt struct {
	r *bufio.Reader
	w io.Writer
}

// New creates a prompt. If in is already a *bufio.Reader it is used as is,
// so a prompt and a line-reading loop over the same input share buffering.
func New(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{r: bufio.NewReader(in), w: out}
}

// Confirm asks a yes/no question; anything but "y" or "yes" is no,
// including end of input.
func (p *Prompt) Confirm(question string) bool {
	fmt.Fprintf(p.w, "%s [y/N] ", question)
	line, err := p.ReadLine()
	if err != nil {
		fmt.Fprintln(p.w)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// ReadLine reads one line without its trailing newline.
// A final line without a newline is returned with a nil error; io.EOF is
// returned only when no input is left.
func (p *Prompt) ReadLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
