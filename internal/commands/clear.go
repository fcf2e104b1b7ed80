package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/session"
	"ltask/internal/store"
)

func init() {
	Register(&ClearCompletedCmd{})
	Register(&ClearAllCmd{})
}

// ClearCompletedCmd implements the clear-completed command.
type ClearCompletedCmd struct{}

func (c *ClearCompletedCmd) Name() string       { return "clear-completed" }
func (c *ClearCompletedCmd) Aliases() []string  { return []string{"clean"} }
func (c *ClearCompletedCmd) Synopsis() string   { return "Delete all completed tasks" }
func (c *ClearCompletedCmd) Usage() string      { return "ltask clear-completed" }
func (c *ClearCompletedCmd) NeedsSession() bool { return true }

func (c *ClearCompletedCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCompletedCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, in io.Reader, out, errOut io.Writer) int {
	sess.Store().ClearCompleted(ctx)
	return exitcode.Success
}

// ClearAllCmd implements the clear-all command.
type ClearAllCmd struct {
	yes bool
}

// SetYes skips the confirmation prompt (for testing).
func (c *ClearAllCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *ClearAllCmd) Name() string       { return "clear-all" }
func (c *ClearAllCmd) Aliases() []string  { return nil }
func (c *ClearAllCmd) Synopsis() string   { return "Delete every task after confirmation" }
func (c *ClearAllCmd) Usage() string      { return "ltask clear-all [--yes]" }
func (c *ClearAllCmd) NeedsSession() bool { return true }

func (c *ClearAllCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *ClearAllCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, in io.Reader, out, errOut io.Writer) int {
	st := sess.Store()
	if st.Len() == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks to clear")
		}
		return exitcode.Success
	}

	var cleared bool
	if c.yes {
		cleared = st.ClearAllWith(ctx, store.AlwaysConfirm)
	} else {
		cleared = st.ClearAll(ctx)
	}

	if !cleared && !cfg.Quiet {
		fmt.Fprintln(out, "cancelled")
	}
	return exitcode.Success
}
