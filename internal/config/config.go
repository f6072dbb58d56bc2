// Package config holds the runtime settings of a session.
package config

import "github.com/rs/zerolog"

const (
	// AppName is the application name used in version and usage output.
	AppName = "todo"

	// DefaultPrompt is printed before every line read.
	DefaultPrompt = "> "

	// DefaultLogLevel is used when logging is enabled without an explicit level.
	DefaultLogLevel = "debug"
)

// Config holds settings for a session. It is populated from process flags;
// there is no config file and no environment lookup.
type Config struct {
	// Quiet suppresses the welcome banner and success confirmations.
	Quiet bool

	// Debug enables debug logging to stderr.
	Debug bool

	// LogFile, when set, receives JSON logs instead of stderr.
	LogFile string

	// LogLevel is the zerolog level name used when logging is enabled.
	LogLevel string

	// Prompt is printed before every line read.
	Prompt string

	// Color enables styled completion marks.
	Color bool
}

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		Prompt:   DefaultPrompt,
		LogLevel: DefaultLogLevel,
	}
}

// LoggingEnabled reports whether any log sink was requested.
func (c *Config) LoggingEnabled() bool {
	return c.Debug || c.LogFile != ""
}

// Validate checks settings that flag parsing cannot.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
