package commands

import "context"

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return []string{"?"} }
func (c *HelpCmd) Synopsis() string  { return "Show this help" }
func (c *HelpCmd) Usage() string     { return "help, ?" }
func (c *HelpCmd) TakesArg() bool    { return false }

func (c *HelpCmd) Run(ctx context.Context, s *Session, arg string) Status {
	s.Render.Usage(s.Registry.UsageLines())
	return OK
}
