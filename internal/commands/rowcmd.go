package commands

import (
	"context"
	"fmt"
	"io"

	"ltask/internal/exitcode"
	"ltask/internal/session"
	"ltask/internal/view"
)

// rowAction mutates the task shown at a row of the projection under f.
// Its shape matches the session's row methods used as method expressions.
type rowAction func(sess *session.Session, ctx context.Context, f view.Filter, row int) bool

// runRow is the shared implementation for done and rm.
// The row is resolved against the filtered view before the store is touched.
// A valid --filter also becomes the session filter, as with list.
func runRow(ctx context.Context, sess *session.Session, filterName string, args []string, act rowAction, errOut io.Writer) int {
	row, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	f, err := filterFor(sess, filterName)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if _, ok := sess.Resolve(f, row); !ok {
		fmt.Fprintf(errOut, "error: task number out of range: %d\n", row)
		return exitcode.UserError
	}

	// The redraw after the change numbers rows the way the user addressed them
	sess.SetFilter(f)
	act(sess, ctx, f, row)
	return exitcode.Success
}
