package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrIDRequired is returned when complete is called without an id.
	ErrIDRequired = errors.New("todo id required")

	// ErrInvalidID is returned when an id is not a non-negative integer.
	ErrInvalidID = errors.New("invalid todo id")
)

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return nil }
func (c *CompleteCmd) Synopsis() string  { return "Mark a todo item as completed" }
func (c *CompleteCmd) Usage() string     { return "complete <id>" }
func (c *CompleteCmd) TakesArg() bool    { return true }

func (c *CompleteCmd) Run(ctx context.Context, s *Session, arg string) Status {
	id, err := ParseID(arg)
	if err != nil {
		s.Log.Debug().Err(err).Msg("complete: bad id")
		fmt.Fprintf(s.Out, MsgInvalidID+"\n", arg)
		return Failed
	}

	if !s.Store.Complete(id) {
		fmt.Fprintln(s.Out, MsgNotFound)
		return Failed
	}

	if !s.Config.Quiet {
		fmt.Fprintln(s.Out, MsgCompleted)
	}
	return OK
}

// ParseID parses a todo id. Only plain decimal digits are accepted,
// so signs, spaces and hex prefixes are rejected.
func ParseID(s string) (int, error) {
	if s == "" {
		return 0, ErrIDRequired
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %s", ErrInvalidID, s)
		}
	}

	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidID, s, err)
	}
	return id, nil
}
