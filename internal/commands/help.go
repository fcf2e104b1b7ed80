package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/session"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
// The usage listing is built from the registry so it cannot drift from
// the registered commands.
type HelpCmd struct {
	// Registry lists the commands to describe; nil means DefaultRegistry.
	Registry *Registry
}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "ltask help" }
func (c *HelpCmd) NeedsSession() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, in io.Reader, out, errOut io.Writer) int {
	reg := c.Registry
	if reg == nil {
		reg = DefaultRegistry
	}
	fmt.Fprint(out, HelpText(reg))
	return exitcode.Success
}

// HelpText renders the usage listing for every command in reg.
func HelpText(reg *Registry) string {
	var b strings.Builder
	b.WriteString("Usage:\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  ltask\tList tasks with the current filter\n")
	for _, cmd := range reg.All() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Usage(), cmd.Synopsis())
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			fmt.Fprintf(tw, "  \t(alias: %s)\n", strings.Join(aliases, ", "))
		}
	}
	tw.Flush()

	b.WriteString(commonFlagsText)
	return b.String()
}

const commonFlagsText = `
Common flags:
  --config <dir>       Override config directory
  --backend <name>     Storage backend: file, sqlite or memory
  --quiet              Suppress informational output
  --debug              Print debug logs to stderr

Task numbers refer to rows of the filtered list, starting at 1.
`
