// Package task defines the task model shared by the store, the projector
// and the persistence adapter.
package task

import (
	"strings"

	"github.com/google/uuid"
)

// Task represents a single to-do item.
type Task struct {
	ID        string   `json:"id,omitempty"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
}

// New creates an open task with a fresh ID.
// The text is trimmed; callers must reject empty text before calling New.
func New(text string, priority Priority) Task {
	return Task{
		ID:       NewID(),
		Text:     strings.TrimSpace(text),
		Priority: priority,
	}
}

// NewID returns a new random task identifier.
func NewID() string {
	return uuid.NewString()
}

// Collection is the full ordered sequence of tasks.
// Position in a Collection is the only mutation handle for a task.
type Collection []Task

// Clone returns a copy that shares no backing array with c.
// A nil or empty collection clones to an empty, non-nil collection.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// InRange reports whether pos is a valid position in c.
func (c Collection) InRange(pos int) bool {
	return pos >= 0 && pos < len(c)
}
