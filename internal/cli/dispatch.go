package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"ltask/internal/commands"
	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/session"
)

// SessionFactory creates a Session from config.
// Used to inject the persistence backend during dispatch. in is the
// buffered stdin that the command also reads from.
type SessionFactory func(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) (*session.Session, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  SessionFactory
}

// NewDispatcher creates a new dispatcher with the given registry and session
// factory. A nil factory selects DefaultFactory.
func NewDispatcher(registry *commands.Registry, factory SessionFactory) *Dispatcher {
	if factory == nil {
		factory = DefaultFactory
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// commonFlags are accepted by every command.
type commonFlags struct {
	configDir string
	backend   string
	quiet     bool
	debug     bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configDir, "config", "", "")
	fs.StringVar(&c.backend, "backend", "", "")
	fs.BoolVar(&c.quiet, "quiet", false, "")
	fs.BoolVar(&c.debug, "debug", false, "")
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, in, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], in, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, in, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, in io.Reader, out, errOut io.Writer) int {
	var common commonFlags
	positional, err := commands.ParseArgs(cmd, args, common.register)
	if err != nil {
		if errors.Is(err, commands.ErrHelp) {
			fmt.Fprintf(out, "usage: %s\n", cmd.Usage())
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	cfg, err := loadConfig(common)
	if err != nil {
		fmt.Fprintf(errOut, "error: config: %v\n", err)
		return exitcode.ConfigError
	}

	// One reader for the whole run so the confirmer and the shell loop
	// never split buffered input between them.
	br := bufio.NewReader(in)

	var sess *session.Session
	if cmd.NeedsSession() {
		sess, err = d.factory(ctx, cfg, br, out, errOut)
		if err != nil {
			if errors.Is(err, session.ErrMissingCollaborator) {
				fmt.Fprintf(errOut, "error: config: %v\n", err)
				return exitcode.ConfigError
			}
			fmt.Fprintf(errOut, "error: storage error: %v\n", err)
			return exitcode.StorageError
		}
		defer func() {
			if err := sess.Close(); err != nil {
				fmt.Fprintf(errOut, "error: close storage: %v\n", err)
			}
		}()
	}

	// Run command
	return cmd.Run(ctx, cfg, sess, positional, br, out, errOut)
}

// loadConfig loads the layered config and applies the command-line
// overrides on top.
func loadConfig(common commonFlags) (*config.Config, error) {
	cfg, err := config.Load(common.configDir)
	if err != nil {
		return nil, err
	}
	cfg.Quiet = common.quiet
	cfg.Debug = common.debug
	if common.backend != "" {
		cfg.Backend = strings.ToLower(common.backend)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
