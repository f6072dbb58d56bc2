// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates the session ended through the exit command.
	Success = 0

	// UserError indicates bad process arguments or flags.
	UserError = 1

	// IOError indicates the console could not be read.
	IOError = 2

	// Interrupted indicates the session was cancelled before the exit command.
	Interrupted = 130
)
