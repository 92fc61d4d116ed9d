// Package json provides a JSON codec for the config package.
//
// Documents must be a single JSON object whose members are strings, booleans
// or numbers. Integral numbers decode as int64 and everything else as
// float64; floats are always encoded with a fractional part or exponent so a
// persisted float reads back as a float.
package json
