package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/session"
)

func init() {
	Register(&InitCmd{})
}

// InitCmd writes the effective configuration to config.yaml.
type InitCmd struct {
	force bool
}

// SetForce allows overwriting an existing file (for testing).
func (c *InitCmd) SetForce(force bool) {
	c.force = force
}

func (c *InitCmd) Name() string       { return "init" }
func (c *InitCmd) Aliases() []string  { return nil }
func (c *InitCmd) Synopsis() string   { return "Write a config file with the current settings" }
func (c *InitCmd) Usage() string      { return "ltask init [--force]" }
func (c *InitCmd) NeedsSession() bool { return false }

func (c *InitCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *InitCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if cfg.HasConfigFile() && !c.force {
		fmt.Fprintf(errOut, "error: %s already exists (use --force to overwrite)\n", cfg.ConfigPath())
		return exitcode.UserError
	}

	if err := cfg.WriteFile(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "wrote %s\n", cfg.ConfigPath())
	}
	return exitcode.Success
}
