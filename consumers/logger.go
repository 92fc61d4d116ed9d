package consumers

import (
	"fmt"
	"io"

	"github.com/0xalexb/hjarta-settings/config"
)

// Logger writes messages to the console only while debug_mode is true.
type Logger struct {
	config  config.Provider
	console io.Writer
}

// NewLogger creates a Logger gated by the debug_mode setting of provider.
func NewLogger(provider config.Provider, console io.Writer) *Logger {
	return &Logger{
		config:  provider,
		console: console,
	}
}

// Log writes message if debug_mode is currently enabled and does nothing otherwise.
func (l *Logger) Log(message string) {
	if !debugEnabled(l.config) {
		return
	}

	_, _ = fmt.Fprintf(l.console, "[LOG] %s\n", message)
}
