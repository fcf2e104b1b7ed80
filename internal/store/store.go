// Package store owns the canonical task collection and its mutations.
//
// Every applied mutation is followed by a full save through the Persister
// and, if the save succeeded, a call to the Notifier. Invalid arguments
// (empty text, out-of-range positions) are silently ignored; mutation
// methods report whether anything changed.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"ltask/internal/task"
)

// ClearAllQuestion is asked before ClearAll empties a non-empty collection.
const ClearAllQuestion = "Delete all tasks?"

// Persister writes the full collection.
type Persister interface {
	Save(ctx context.Context, tasks task.Collection) error
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(question string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(question string) bool { return f(question) }

// AlwaysConfirm answers yes to every question.
var AlwaysConfirm Confirmer = ConfirmFunc(func(string) bool { return true })

// Notifier is called after each mutation that was saved successfully.
// tasks is a copy; the notifier may keep it.
type Notifier func(tasks task.Collection)

// CompletionEvent is published when a toggle marks a task completed.
type CompletionEvent struct {
	Position int
	Task     task.Task
}

// CompletionHandler consumes completion events.
type CompletionHandler func(CompletionEvent)

// ErrNilCollaborator is returned by New when a required collaborator is nil.
var ErrNilCollaborator = errors.New("nil collaborator")

// Store holds the ordered task collection.
// It is not safe for concurrent use; callers serialize events.
type Store struct {
	tasks     task.Collection
	persister Persister
	confirmer Confirmer
	notify    Notifier
	handlers  []CompletionHandler
	log       zerolog.Logger
}

// New creates a store holding initial.
// persister and confirmer are required; notify may be nil.
func New(initial task.Collection, persister Persister, confirmer Confirmer, notify Notifier, log zerolog.Logger) (*Store, error) {
	if persister == nil {
		return nil, fmt.Errorf("persister: %w", ErrNilCollaborator)
	}
	if confirmer == nil {
		return nil, fmt.Errorf("confirmer: %w", ErrNilCollaborator)
	}
	return &Store{
		tasks:     initial.Clone(),
		persister: persister,
		confirmer: confirmer,
		notify:    notify,
		log:       log.With().Str("component", "store").Logger(),
	}, nil
}

// Tasks returns a copy of the collection.
func (s *Store) Tasks() task.Collection {
	return s.tasks.Clone()
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Subscribe registers h to receive completion events.
func (s *Store) Subscribe(h CompletionHandler) {
	if h != nil {
		s.handlers = append(s.handlers, h)
	}
}

// Add appends an open task. Text that is empty after trimming is ignored.
func (s *Store) Add(ctx context.Context, text string, priority task.Priority) bool {
	if strings.TrimSpace(text) == "" {
		s.log.Debug().Msg("add ignored: empty text")
		return false
	}
	t := task.New(text, priority)
	s.tasks = append(s.tasks, t)
	s.log.Debug().Str("id", t.ID).Str("priority", string(priority)).Msg("task added")
	s.commit(ctx)
	return true
}

// Toggle flips the completion flag of the task at pos.
// A completion event is published when the task becomes completed.
func (s *Store) Toggle(ctx context.Context, pos int) bool {
	if !s.tasks.InRange(pos) {
		s.log.Debug().Int("pos", pos).Msg("toggle ignored: out of range")
		return false
	}
	s.tasks[pos].Completed = !s.tasks[pos].Completed
	t := s.tasks[pos]
	s.log.Debug().Int("pos", pos).Bool("completed", t.Completed).Msg("task toggled")
	s.commit(ctx)

	if t.Completed {
		s.publish(CompletionEvent{Position: pos, Task: t})
	}
	return true
}

// Delete removes the task at pos.
func (s *Store) Delete(ctx context.Context, pos int) bool {
	if !s.tasks.InRange(pos) {
		s.log.Debug().Int("pos", pos).Msg("delete ignored: out of range")
		return false
	}
	next := make(task.Collection, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:pos]...)
	next = append(next, s.tasks[pos+1:]...)
	s.tasks = next
	s.log.Debug().Int("pos", pos).Msg("task deleted")
	s.commit(ctx)
	return true
}

// ClearCompleted keeps only open tasks, in their existing order.
// The collection is saved even when nothing was removed.
// It reports whether any task was removed.
func (s *Store) ClearCompleted(ctx context.Context) bool {
	next := make(task.Collection, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			next = append(next, t)
		}
	}
	removed := len(s.tasks) - len(next)
	s.tasks = next
	s.log.Debug().Int("removed", removed).Msg("completed tasks cleared")
	s.commit(ctx)
	return removed > 0
}

// ClearAll empties the collection after the configured Confirmer agrees.
// An empty collection is left untouched and no question is asked.
func (s *Store) ClearAll(ctx context.Context) bool {
	return s.ClearAllWith(ctx, s.confirmer)
}

// ClearAllWith is ClearAll with an explicit Confirmer.
func (s *Store) ClearAllWith(ctx context.Context, c Confirmer) bool {
	if len(s.tasks) == 0 {
		return false
	}
	if c == nil || !c.Confirm(ClearAllQuestion) {
		s.log.Debug().Msg("clear all declined")
		return false
	}
	s.tasks = task.Collection{}
	s.log.Debug().Msg("all tasks cleared")
	s.commit(ctx)
	return true
}

// commit saves the collection and notifies on success.
// A failed save leaves the in-memory state as is.
func (s *Store) commit(ctx context.Context) {
	if err := s.persister.Save(ctx, s.tasks); err != nil {
		s.log.Error().Err(err).Msg("changes kept in memory but not saved")
		return
	}
	if s.notify != nil {
		s.notify(s.tasks.Clone())
	}
}

func (s *Store) publish(ev CompletionEvent) {
	for _, h := range s.handlers {
		h(ev)
	}
}
