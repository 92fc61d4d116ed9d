// Package consumers contains simulated services that read their settings
// from an injected config.Provider.
//
// None of them talk to a real database or API; each writes a human-readable
// description of what it would have done to a console writer. Values are
// read from the provider at call time, except the API key, which APIClient
// captures once when it is constructed.
package consumers
