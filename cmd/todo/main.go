// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"todo/internal/backend/memory"
	todocli "todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
)

// version is the application version. Set at build time via -ldflags.
var version = "0.1.0"

func init() {
	cli.VersionPrinter = printVersion
}

func main() {
	code := run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}

// run parses process flags, wires the session and runs it. Returns the exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	var (
		cfg     = config.New()
		noColor bool
		code    = exitcode.Success
	)

	app := &cli.Command{
		Name:            config.AppName,
		Usage:           "Keep a to-do list from an interactive prompt",
		UsageText:       "todo [options]",
		Version:         version,
		Reader:          in,
		Writer:          out,
		ErrWriter:       errOut,
		HideHelpCommand: true,
		OnUsageError: func(ctx context.Context, c *cli.Command, err error, isSubcommand bool) error {
			return err
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "quiet",
				Aliases:     []string{"q"},
				Usage:       "suppress the welcome banner and success messages",
				Destination: &cfg.Quiet,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "print debug logs to stderr",
				Destination: &cfg.Debug,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "write JSON logs to this file instead of stderr",
				Destination: &cfg.LogFile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Value:       config.DefaultLogLevel,
				Destination: &cfg.LogLevel,
			},
			&cli.StringFlag{
				Name:        "prompt",
				Usage:       "prompt printed before each command",
				Value:       config.DefaultPrompt,
				Destination: &cfg.Prompt,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "disable styled output",
				Destination: &noColor,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() > 0 {
				return fmt.Errorf("unexpected argument: %s", c.Args().First())
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}
			cfg.Color = !noColor && isTerminal(out)

			logger := zerolog.Nop()
			if cfg.LoggingEnabled() {
				l, closer, err := logging.New(cfg.LogLevel, cfg.LogFile, errOut)
				if err != nil {
					return fmt.Errorf("setup logger: %w", err)
				}
				defer closer()
				logger = l
			}

			store := memory.New(logging.Component(logger, "store"))
			loop := todocli.NewLoop(cfg, commands.NewDefaultRegistry(), store, logging.Component(logger, "loop"))

			code = loop.Run(ctx, c.Reader, c.Writer, c.ErrWriter)
			return nil
		},
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return code
}

// printVersion prints "todo <version>".
func printVersion(c *cli.Command) {
	fmt.Fprintf(c.Root().Writer, "%s %s\n", c.Root().Name, c.Root().Version)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
