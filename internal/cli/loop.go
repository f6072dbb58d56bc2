// Package cli runs the interactive read-parse-dispatch-print loop.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

// Loop drives a single interactive session against one store.
type Loop struct {
	cfg      *config.Config
	registry *commands.Registry
	store    service.Store
	log      zerolog.Logger
}

// NewLoop creates a loop. The store is owned by the loop for its whole lifetime.
func NewLoop(cfg *config.Config, registry *commands.Registry, store service.Store, log zerolog.Logger) *Loop {
	return &Loop{
		cfg:      cfg,
		registry: registry,
		store:    store,
		log:      log,
	}
}

// Run reads commands from in until the exit command, a read failure, or ctx
// cancellation. Regular output goes to out, fatal errors to errOut.
// Returns the exit code.
func (l *Loop) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	render := output.NewRenderer(out, l.cfg.Color)
	session := &commands.Session{
		Config:   l.cfg,
		Store:    l.store,
		Registry: l.registry,
		Out:      out,
		Render:   render,
		Log:      l.log,
	}

	if !l.cfg.Quiet {
		fmt.Fprintln(out, commands.MsgWelcome)
		render.Usage(l.registry.UsageLines())
		fmt.Fprintln(out)
	}

	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.Interrupted
		}

		render.Lines(l.store.List())
		fmt.Fprint(out, l.cfg.Prompt)

		line, err := readLine(reader)
		if err != nil {
			l.log.Error().Err(err).Msg("read input")
			fmt.Fprintf(errOut, "error: read input: %v\n", err)
			return exitcode.IOError
		}

		if l.dispatch(ctx, session, line) == commands.Exit {
			l.log.Debug().Msg("session ended")
			return exitcode.Success
		}

		fmt.Fprintln(out)
	}
}

// dispatch parses one input line and runs the matching command.
func (l *Loop) dispatch(ctx context.Context, s *commands.Session, line string) commands.Status {
	name, arg := ParseLine(line)

	cmd, err := l.registry.Resolve(name, arg)
	if err != nil {
		l.log.Debug().Err(err).Str("input", line).Msg("unrecognized command")
		fmt.Fprintln(s.Out, commands.MsgInvalidCommand)
		return commands.Failed
	}

	status := cmd.Run(ctx, s, arg)
	l.log.Debug().
		Str("cmd", cmd.Name()).
		Str("arg", arg).
		Stringer("status", status).
		Int("items", l.store.Len()).
		Msg("dispatch")
	return status
}

// ParseLine splits a raw input line into a keyword and its argument.
// Surrounding whitespace is trimmed from both; the keyword ends at the first space.
func ParseLine(line string) (name, arg string) {
	line = strings.TrimSpace(line)
	name, arg, _ = strings.Cut(line, " ")
	return name, strings.TrimSpace(arg)
}

// readLine reads one line. A final line without a trailing newline is returned
// as is; the following call reports io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
