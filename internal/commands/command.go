// Package commands provides the interactive command interface and implementations.
package commands

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
)

// Status tells the loop how to proceed after a command ran.
type Status int

const (
	// OK means the command succeeded.
	OK Status = iota

	// Failed means a user-facing error was printed; the loop continues.
	Failed

	// Exit ends the session.
	Exit
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Failed:
		return "failed"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Session is the state shared by all commands for the lifetime of the loop.
type Session struct {
	Config   *config.Config
	Store    service.Store
	Registry *Registry
	Out      io.Writer
	Render   *output.Renderer
	Log      zerolog.Logger
}

// Command defines the interface for interactive commands.
type Command interface {
	// Name returns the primary keyword.
	Name() string

	// Aliases returns alternative keywords for the command.
	Aliases() []string

	// Synopsis returns a short description for the usage banner.
	Synopsis() string

	// Usage returns the usage string for the usage banner.
	Usage() string

	// TakesArg reports whether text may follow the keyword.
	// A keyword that takes no argument only matches on its own.
	TakesArg() bool

	// Run executes the command. arg is the trimmed text after the keyword.
	// Messages for the user are written to s.Out.
	Run(ctx context.Context, s *Session, arg string) Status
}
