package config

import "errors"

// ErrParse is returned when a source exists but its contents cannot be decoded.
var ErrParse = errors.New("config parse error")

// ErrIO is returned when a source exists but cannot be read, or cannot be written on persist.
var ErrIO = errors.New("config io error")

// ErrEncode is returned when the in-memory values cannot be encoded for persisting.
var ErrEncode = errors.New("config encode error")

// ErrSourceNotFound is returned by Source.Fetch when the source does not exist.
var ErrSourceNotFound = errors.New("config source not found")

// ErrSourceConflict is returned when the store is requested with a source
// other than the one it was constructed from.
var ErrSourceConflict = errors.New("config store already opened with a different source")

// ErrUnsupportedValue is returned when a decoded value is not a string, boolean or number.
var ErrUnsupportedValue = errors.New("unsupported config value")

// ErrNilOpener is returned when a Registry has no way to open sources.
var ErrNilOpener = errors.New("opener must not be nil")
