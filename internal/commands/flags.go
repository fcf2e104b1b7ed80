package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ErrHelp is returned by ParseArgs when -h or --help was given.
var ErrHelp = errors.New("help requested")

// ParseArgs parses args against cmd's flags plus any flags registered by
// extra, and returns the positional arguments.
// Errors are phrased for direct display after "error: ".
func ParseArgs(cmd Command, args []string, extra func(fs *flag.FlagSet)) ([]string, error) {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	if extra != nil {
		extra(fs)
	}
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, flagError(err)
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") && positional[0] != "-" {
		return nil, fmt.Errorf("unknown flag: %s", positional[0])
	}
	return positional, nil
}

func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return ErrHelp
	}
	errStr := err.Error()

	// Check for missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagPart := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return fmt.Errorf("flag needs an argument: %s", flagPart)
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		return fmt.Errorf("unknown flag: %s", flagName)
	}

	return err
}
