// Package output provides formatters and the terminal renderer.
package output

import (
	"fmt"
	"io"
	"strings"

	"ltask/internal/store"
	"ltask/internal/task"
	"ltask/internal/view"
)

// Options controls how views are written.
type Options struct {
	// Verbose adds task IDs to each line.
	Verbose bool

	// Quiet drops the empty-view message and the summary line.
	Quiet bool
}

// FormatTask formats a task line.
// Format: "{N:>4}  [{x| }] {TEXT} ({PRIORITY})\n"
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  [%c] %s (%s)\n", num, checkMark(t), normalizeText(t.Text), t.Priority)
}

// FormatTaskVerbose is FormatTask followed by the task ID.
func FormatTaskVerbose(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  [%c] %s (%s)  %s\n", num, checkMark(t), normalizeText(t.Text), t.Priority, t.ID)
}

// FormatSummary formats the counts line.
func FormatSummary(w io.Writer, s view.Summary) {
	fmt.Fprintf(w, "%d active of %d tasks, %d completed\n", s.Active, s.Total, s.Completed)
}

// WriteView writes the projection rows numbered from 1, then the summary.
// An empty projection is replaced by the filter's empty message.
func WriteView(w io.Writer, v view.View, opts Options) {
	if len(v.Entries) == 0 && !opts.Quiet {
		fmt.Fprintln(w, v.Filter.EmptyMessage())
	}
	for i, e := range v.Entries {
		if opts.Verbose {
			FormatTaskVerbose(w, i+1, e.Task)
		} else {
			FormatTask(w, i+1, e.Task)
		}
	}
	if !opts.Quiet {
		FormatSummary(w, v.Summary)
	}
}

// Renderer writes views to a terminal after each change.
type Renderer struct {
	w    io.Writer
	opts Options
}

// NewRenderer creates a renderer. A quiet renderer writes nothing.
func NewRenderer(w io.Writer, opts Options) *Renderer {
	return &Renderer{w: w, opts: opts}
}

// Render implements session.Renderer.
func (r *Renderer) Render(v view.View) {
	if r.opts.Quiet {
		return
	}
	WriteView(r.w, v, r.opts)
}

// NewCelebrator returns a completion handler that prints a short line for
// every completed task. A quiet celebrator prints nothing.
func NewCelebrator(w io.Writer, quiet bool) store.CompletionHandler {
	return func(ev store.CompletionEvent) {
		if quiet {
			return
		}
		fmt.Fprintf(w, "nice! completed: %s\n", normalizeText(ev.Task.Text))
	}
}

func checkMark(t task.Task) rune {
	if t.Completed {
		return 'x'
	}
	return ' '
}

// normalizeText normalizes task text for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeText(text string) string {
	// Replace newlines with spaces
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
