package commands

import (
	"context"
	"fmt"
)

// ExitCmd implements the exit command.
type ExitCmd struct{}

func (c *ExitCmd) Name() string      { return "x" }
func (c *ExitCmd) Aliases() []string { return nil }
func (c *ExitCmd) Synopsis() string  { return "Exit the app" }
func (c *ExitCmd) Usage() string     { return "x" }
func (c *ExitCmd) TakesArg() bool    { return false }

func (c *ExitCmd) Run(ctx context.Context, s *Session, arg string) Status {
	fmt.Fprintln(s.Out, MsgExiting)
	return Exit
}
