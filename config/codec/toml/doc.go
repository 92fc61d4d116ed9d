// Package toml provides a TOML codec for the config package, backed by
// github.com/pelletier/go-toml/v2. Only top-level keys are used; tables and
// arrays are rejected by the store as unsupported values.
package toml
