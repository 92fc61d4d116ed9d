package consumers

import (
	"fmt"
	"io"

	"github.com/0xalexb/hjarta-settings/config"
)

// DatabaseConnection simulates a database connection configured from a Provider.
type DatabaseConnection struct {
	config  config.Provider
	console io.Writer
}

// NewDatabaseConnection creates a DatabaseConnection reading settings from provider.
func NewDatabaseConnection(provider config.Provider, console io.Writer) *DatabaseConnection {
	return &DatabaseConnection{
		config:  provider,
		console: console,
	}
}

// Connect describes the connection it would open using the current
// database_url and max_connections.
func (d *DatabaseConnection) Connect() {
	url := d.config.Get(config.KeyDatabaseURL)
	maxConnections := d.config.Get(config.KeyMaxConnections)

	_, _ = fmt.Fprintf(d.console, "Connecting to database: %s\n", url)
	_, _ = fmt.Fprintf(d.console, "Max connections: %s\n", maxConnections)
}
