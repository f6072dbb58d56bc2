package commands

import (
	"context"
	"fmt"
)

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a new todo item" }
func (c *AddCmd) Usage() string     { return "add <text>" }
func (c *AddCmd) TakesArg() bool    { return true }

func (c *AddCmd) Run(ctx context.Context, s *Session, arg string) Status {
	if arg == "" {
		fmt.Fprintln(s.Out, MsgEmptyText)
		return Failed
	}

	s.Store.Add(arg)

	if !s.Config.Quiet {
		fmt.Fprintln(s.Out, MsgAdded)
	}
	return OK
}
