package commands

import (
	"errors"
	"fmt"

	"todo/internal/output"
)

// ErrUnknownCommand is returned when a keyword does not resolve to a command.
var ErrUnknownCommand = errors.New("unknown command")

// Registry holds registered commands in registration order.
type Registry struct {
	cmds  map[string]Command // name and aliases map to command
	order []Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// NewDefaultRegistry returns a registry with every built-in command,
// in the order they appear in the usage banner.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(&AddCmd{})
	r.MustRegister(&CompleteCmd{})
	r.MustRegister(&ListCmd{})
	r.MustRegister(&HelpCmd{})
	r.MustRegister(&ExitCmd{})
	return r
}

// Register adds a command to the registry.
// Returns an error if the name or any alias is already registered.
func (r *Registry) Register(c Command) error {
	keys := append([]string{c.Name()}, c.Aliases()...)
	for _, key := range keys {
		if _, exists := r.cmds[key]; exists {
			return fmt.Errorf("command already registered: %s", key)
		}
	}

	for _, key := range keys {
		r.cmds[key] = c
	}
	r.order = append(r.order, c)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(c Command) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// Resolve finds the command for a parsed keyword and argument.
// Returns ErrUnknownCommand if the keyword is not registered, or if an
// argument was given to a command that takes none.
func (r *Registry) Resolve(name, arg string) (Command, error) {
	cmd, ok := r.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if arg != "" && !cmd.TakesArg() {
		return nil, fmt.Errorf("%w: %s does not take an argument", ErrUnknownCommand, name)
	}
	return cmd, nil
}

// All returns all unique commands in registration order.
func (r *Registry) All() []Command {
	result := make([]Command, len(r.order))
	copy(result, r.order)
	return result
}

// UsageLines returns one usage banner entry per registered command.
func (r *Registry) UsageLines() []output.UsageLine {
	lines := make([]output.UsageLine, 0, len(r.order))
	for _, cmd := range r.order {
		lines = append(lines, output.UsageLine{Usage: cmd.Usage(), Synopsis: cmd.Synopsis()})
	}
	return lines
}
