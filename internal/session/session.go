// Package session binds the task store, the current filter mode and the
// host collaborators into one explicit context object.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"ltask/internal/persist"
	"ltask/internal/store"
	"ltask/internal/task"
	"ltask/internal/view"
)

// ErrMissingCollaborator is returned by New when a required collaborator
// has not been wired.
var ErrMissingCollaborator = errors.New("missing collaborator")

// Renderer draws a view. The store calls it after every saved mutation.
type Renderer interface {
	Render(v view.View)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(v view.View)

// Render implements Renderer.
func (f RenderFunc) Render(v view.View) { f(v) }

// Options configures a Session.
type Options struct {
	// Backend stores the serialized collection. Required.
	Backend persist.Backend

	// Key is the storage key; empty selects persist.DefaultKey.
	Key string

	// Renderer draws views. Required.
	Renderer Renderer

	// Confirmer answers the clear-all question. Required.
	Confirmer store.Confirmer

	// OnComplete handlers receive completion events.
	OnComplete []store.CompletionHandler

	Logger zerolog.Logger
}

// Session is one application session: the task store plus the filter mode.
// It is not safe for concurrent use.
type Session struct {
	store    *store.Store
	backend  persist.Backend
	renderer Renderer
	filter   view.Filter
	log      zerolog.Logger
}

// New validates opts, loads the stored collection and returns a session
// with the filter set to all.
func New(ctx context.Context, opts Options) (*Session, error) {
	switch {
	case opts.Backend == nil:
		return nil, fmt.Errorf("persistence backend: %w", ErrMissingCollaborator)
	case opts.Renderer == nil:
		return nil, fmt.Errorf("renderer: %w", ErrMissingCollaborator)
	case opts.Confirmer == nil:
		return nil, fmt.Errorf("confirmer: %w", ErrMissingCollaborator)
	}

	adapter := persist.NewAdapter(opts.Backend, opts.Key, opts.Logger)
	s := &Session{
		backend:  opts.Backend,
		renderer: opts.Renderer,
		filter:   view.FilterAll,
		log:      opts.Logger.With().Str("component", "session").Logger(),
	}

	st, err := store.New(adapter.Load(ctx), adapter, opts.Confirmer, s.notify, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	for _, h := range opts.OnComplete {
		st.Subscribe(h)
	}
	s.store = st

	return s, nil
}

// Store returns the session's task store.
func (s *Session) Store() *store.Store {
	return s.store
}

// Tasks returns a copy of the full collection.
func (s *Session) Tasks() task.Collection {
	return s.store.Tasks()
}

// Filter returns the current filter mode.
func (s *Session) Filter() view.Filter {
	return s.filter
}

// SetFilter replaces the filter mode. Any mode may follow any other.
func (s *Session) SetFilter(f view.Filter) {
	s.log.Debug().Str("from", string(s.filter)).Str("to", string(f)).Msg("filter changed")
	s.filter = f
}

// View returns the current view.
func (s *Session) View() view.View {
	return view.Build(s.store.Tasks(), s.filter)
}

// Render draws the current view.
func (s *Session) Render() {
	s.renderer.Render(s.View())
}

// Resolve maps a 1-based row number of the projection under f to a full
// position. Mutations addressed by row must go through Resolve.
func (s *Session) Resolve(f view.Filter, row int) (int, bool) {
	return view.Resolve(view.Project(s.store.Tasks(), f), row)
}

// ToggleRow toggles the task shown at row under f.
func (s *Session) ToggleRow(ctx context.Context, f view.Filter, row int) bool {
	pos, ok := s.Resolve(f, row)
	if !ok {
		return false
	}
	return s.store.Toggle(ctx, pos)
}

// DeleteRow deletes the task shown at row under f.
func (s *Session) DeleteRow(ctx context.Context, f view.Filter, row int) bool {
	pos, ok := s.Resolve(f, row)
	if !ok {
		return false
	}
	return s.store.Delete(ctx, pos)
}

// Close releases the persistence backend.
func (s *Session) Close() error {
	return s.backend.Close()
}

func (s *Session) notify(tasks task.Collection) {
	s.renderer.Render(view.Build(tasks, s.filter))
}
