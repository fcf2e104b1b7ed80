package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/session"
	"ltask/internal/view"
)

func init() {
	Register(&FilterCmd{})
}

// FilterCmd implements the filter command: it switches the session's
// filter mode and redraws. Without an argument it prints the current mode.
type FilterCmd struct{}

func (c *FilterCmd) Name() string       { return "filter" }
func (c *FilterCmd) Aliases() []string  { return nil }
func (c *FilterCmd) Synopsis() string   { return "Show or switch the filter mode" }
func (c *FilterCmd) Usage() string      { return "ltask filter [all|active|completed]" }
func (c *FilterCmd) NeedsSession() bool { return true }

func (c *FilterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FilterCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, in io.Reader, out, errOut io.Writer) int {
	switch len(args) {
	case 0:
		fmt.Fprintln(out, sess.Filter())
		return exitcode.Success
	case 1:
	default:
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	f, err := view.ParseFilter(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	sess.SetFilter(f)
	sess.Render()
	return exitcode.Success
}
