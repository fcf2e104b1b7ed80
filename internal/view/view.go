// Package view derives filtered, displayable projections of a task
// collection. It never mutates or owns task data.
package view

import (
	"fmt"
	"strings"

	"ltask/internal/task"
)

// Filter selects which tasks a projection shows.
type Filter string

// Filter modes.
const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters returns every filter mode in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// ParseFilter parses a filter name, case-insensitively.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return "", fmt.Errorf("invalid filter: %s (want all|active|completed)", s)
}

// Match reports whether t belongs in a projection under f.
// Unknown filters behave like FilterAll.
func (f Filter) Match(t task.Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// EmptyMessage is shown when a projection under f has no entries.
func (f Filter) EmptyMessage() string {
	switch f {
	case FilterActive:
		return "no active tasks"
	case FilterCompleted:
		return "no completed tasks"
	default:
		return "no tasks yet"
	}
}

// Entry pairs a task with its position in the full collection.
type Entry struct {
	Position int
	Task     task.Task
}

// Project returns the tasks of c matching f, in collection order, each
// paired with its full-collection position.
func Project(c task.Collection, f Filter) []Entry {
	entries := make([]Entry, 0, len(c))
	for i, t := range c {
		if f.Match(t) {
			entries = append(entries, Entry{Position: i, Task: t})
		}
	}
	return entries
}

// Resolve maps a 1-based row number in entries to the full-collection
// position of that row. ok is false if num is not a row of entries.
func Resolve(entries []Entry, num int) (pos int, ok bool) {
	if num < 1 || num > len(entries) {
		return 0, false
	}
	return entries[num-1].Position, true
}

// Summary holds task counts for a collection.
type Summary struct {
	Active    int
	Total     int
	Completed int
}

// Summarize counts the tasks of c.
func Summarize(c task.Collection) Summary {
	completed := 0
	for _, t := range c {
		if t.Completed {
			completed++
		}
	}
	return Summary{
		Active:    len(c) - completed,
		Total:     len(c),
		Completed: completed,
	}
}

// View is a rendered snapshot: the current filter, its projection and the
// summary of the full collection.
type View struct {
	Filter  Filter
	Entries []Entry
	Summary Summary
}

// Build computes the View of c under f.
func Build(c task.Collection, f Filter) View {
	return View{
		Filter:  f,
		Entries: Project(c, f),
		Summary: Summarize(c),
	}
}
