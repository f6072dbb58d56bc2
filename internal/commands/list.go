package commands

import "context"

// ListCmd implements the list command.
// The loop renders the list before every prompt, so there is nothing left to do.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "Show all todo items" }
func (c *ListCmd) Usage() string     { return "list" }
func (c *ListCmd) TakesArg() bool    { return false }

func (c *ListCmd) Run(ctx context.Context, s *Session, arg string) Status {
	return OK
}
