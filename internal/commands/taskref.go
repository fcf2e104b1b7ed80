package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"ltask/internal/session"
	"ltask/internal/view"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a row number from args.
//
// Accepted forms: "3" and "#3". Exactly one reference is allowed.
// The number is the 1-based row of the task in the filtered list, not
// its position in the full collection.
func ParseTaskRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("too many arguments: %s", strings.Join(args[1:], " "))
	}

	ref := strings.TrimPrefix(args[0], "#")
	if !isAllDigits(ref) {
		return 0, fmt.Errorf("invalid task reference: %s", args[0])
	}
	num, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("invalid task reference: %s", args[0])
	}
	return num, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// filterFor returns the filter named by the --filter flag, or the
// session's current filter when the flag is empty.
func filterFor(sess *session.Session, name string) (view.Filter, error) {
	if name == "" {
		return sess.Filter(), nil
	}
	return view.ParseFilter(name)
}
