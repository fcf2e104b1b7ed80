// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown row number).
	UserError = 1

	// ConfigError indicates an invalid configuration or a startup failure.
	ConfigError = 2

	// StorageError indicates the storage backend could not be opened.
	StorageError = 3

	// Interrupted indicates the run was cancelled by SIGINT or SIGTERM.
	Interrupted = 130
)
