package task

import (
	"fmt"
	"strings"
)

// Priority is an opaque priority label chosen from a configured set.
type Priority string

// Default priority set used when configuration does not override it.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriorities returns the built-in priority set in display order.
func DefaultPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// PrioritySet is a fixed, ordered set of allowed priorities.
type PrioritySet []Priority

// Contains reports whether p is a member of the set.
func (s PrioritySet) Contains(p Priority) bool {
	for _, q := range s {
		if q == p {
			return true
		}
	}
	return false
}

// Parse matches name against the set, case-insensitively and trimmed.
func (s PrioritySet) Parse(name string) (Priority, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, p := range s {
		if strings.ToLower(string(p)) == want {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority: %s (want one of %s)", name, s)
}

// String joins the set with "|".
func (s PrioritySet) String() string {
	names := make([]string, len(s))
	for i, p := range s {
		names[i] = string(p)
	}
	return strings.Join(names, "|")
}
