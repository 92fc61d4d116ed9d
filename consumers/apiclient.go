package consumers

import (
	"fmt"
	"io"

	"github.com/0xalexb/hjarta-settings/config"

	"github.com/google/uuid"
)

// APIClient simulates an HTTP API client.
//
// The API key is read once in NewAPIClient and kept for the client's lifetime;
// later changes to api_key are not picked up. debug_mode is read on every request.
type APIClient struct {
	config       config.Provider
	console      io.Writer
	apiKey       config.Value
	newRequestID func() string
}

// NewAPIClient creates an APIClient and captures the current api_key.
func NewAPIClient(provider config.Provider, console io.Writer) *APIClient {
	return &APIClient{
		config:       provider,
		console:      console,
		apiKey:       provider.Get(config.KeyAPIKey),
		newRequestID: uuid.NewString,
	}
}

// APIKey returns the key captured at construction.
func (c *APIClient) APIKey() config.Value {
	return c.apiKey
}

// MakeRequest describes a request to endpoint. In debug mode the description
// is suffixed with [DEBUG MODE] and a request id.
func (c *APIClient) MakeRequest(endpoint string) {
	debugInfo := ""
	if debugEnabled(c.config) {
		debugInfo = fmt.Sprintf(" [DEBUG MODE] (request %s)", c.newRequestID())
	}

	_, _ = fmt.Fprintf(c.console, "Making request to %s with API key: %s%s\n", endpoint, c.apiKey, debugInfo)
}

// debugEnabled reports whether debug_mode is currently truthy: true, a
// non-zero number or a non-empty string. Absent counts as disabled.
func debugEnabled(provider config.Provider) bool {
	return provider.Get(config.KeyDebugMode).Truthy()
}
