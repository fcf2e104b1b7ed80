package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/prompt"
	"ltask/internal/session"
)

// ShellPrompt is printed before each command line unless quiet.
const ShellPrompt = "ltask> "

func init() {
	Register(&ShellCmd{})
}

// ShellCmd runs an interactive loop over one session, so the filter mode
// persists between commands and the view is redrawn after each change.
type ShellCmd struct {
	// Registry resolves command names; nil means DefaultRegistry.
	Registry *Registry
}

func (c *ShellCmd) Name() string       { return "shell" }
func (c *ShellCmd) Aliases() []string  { return []string{"repl"} }
func (c *ShellCmd) Synopsis() string   { return "Run commands interactively in one session" }
func (c *ShellCmd) Usage() string      { return "ltask shell" }
func (c *ShellCmd) NeedsSession() bool { return true }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShellCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	reg := c.Registry
	if reg == nil {
		reg = DefaultRegistry
	}

	// in is shared with the session's confirmer; prompt.New keeps the
	// same buffered reader so neither side loses input.
	p := prompt.New(in, out)
	sess.Render()

	for {
		if !cfg.Quiet {
			fmt.Fprint(out, ShellPrompt)
		}
		line, err := readLine(ctx, p)
		if err != nil {
			if ctx.Err() != nil {
				if !cfg.Quiet {
					fmt.Fprintln(out)
				}
				return exitcode.Interrupted
			}
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(errOut, "error: read input: %v\n", err)
				return exitcode.UserError
			}
			if !cfg.Quiet {
				fmt.Fprintln(out)
			}
			return exitcode.Success
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "quit", "exit", "q":
			return exitcode.Success
		}

		c.runLine(ctx, reg, cfg, sess, fields, in, out, errOut)
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine waits for the next line or for ctx to be cancelled, whichever
// comes first. A line that arrives after cancellation is dropped.
// On cancellation the pending read is abandoned; the process is about to
// exit, so the prompt is not reused.
func readLine(ctx context.Context, p *prompt.Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := p.ReadLine()
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return r.line, r.err
	}
}

// runLine executes one shell command. Errors are reported and the loop
// continues.
func (c *ShellCmd) runLine(ctx context.Context, reg *Registry, cfg *config.Config, sess *session.Session, fields []string, in io.Reader, out, errOut io.Writer) int {
	cmd, ok := reg.Find(fields[0])
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", fields[0])
		return exitcode.UserError
	}
	if cmd.Name() == c.Name() {
		fmt.Fprintln(errOut, "error: already in a shell")
		return exitcode.UserError
	}

	positional, err := ParseArgs(cmd, fields[1:], nil)
	if err != nil {
		if errors.Is(err, ErrHelp) {
			fmt.Fprintf(out, "usage: %s\n", cmd.Usage())
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	return cmd.Run(ctx, cfg, sess, positional, in, out, errOut)
}
