package commands

import (
	"context"
	"flag"
	"io"

	"ltask/internal/config"
	"ltask/internal/session"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. It toggles completion, so running
// it on a completed task reopens it.
type DoneCmd struct {
	filter string
}

// SetFilter sets the filter name (for testing).
func (c *DoneCmd) SetFilter(name string) {
	c.filter = name
}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string   { return "Toggle a task's completion" }
func (c *DoneCmd) Usage() string      { return "ltask done [--filter <f>] <n>" }
func (c *DoneCmd) NeedsSession() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "", "")
	fs.StringVar(&c.filter, "f", "", "")
}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, in io.Reader, out, errOut io.Writer) int {
	return runRow(ctx, sess, c.filter, args, (*session.Session).ToggleRow, errOut)
}
