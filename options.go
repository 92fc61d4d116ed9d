package settings

import (
	"io"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	// BaseDir is the directory configuration sources are resolved against.
	// Empty means the directory of the running executable.
	BaseDir string
	// Source is the configuration file name. Empty means config.DefaultSourceName.
	Source string
	// Console receives consumer output. Nil means os.Stdout.
	Console io.Writer
	// Watch reloads the configuration store when its file changes.
	Watch bool
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format: "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithBaseDir sets the directory the configuration source is resolved against.
func WithBaseDir(dir string) Option {
	return func(opts *Options) {
		opts.BaseDir = dir
	}
}

// WithSource sets the configuration file name, e.g. "config.json" or "settings.yaml".
// The format is picked from the extension.
func WithSource(name string) Option {
	return func(opts *Options) {
		opts.Source = name
	}
}

// WithConsole sets the writer consumers describe their actions to.
func WithConsole(w io.Writer) Option {
	return func(opts *Options) {
		opts.Console = w
	}
}

// WithWatch enables reloading the configuration when its file changes.
// Watching is skipped with a warning when the base directory does not exist.
func WithWatch(enabled bool) Option {
	return func(opts *Options) {
		opts.Watch = enabled
	}
}
