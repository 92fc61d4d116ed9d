package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// Default keys and values used when the source does not exist.
const (
	KeyDatabaseURL    = "database_url"
	KeyAPIKey         = "api_key"
	KeyDebugMode      = "debug_mode"
	KeyMaxConnections = "max_connections"
)

// DefaultValues returns a fresh copy of the values a store is seeded with
// when its source does not exist.
func DefaultValues() map[string]Value {
	return map[string]Value{
		KeyDatabaseURL:    String("localhost:5432"),
		KeyAPIKey:         String("default_key"),
		KeyDebugMode:      Bool(true),
		KeyMaxConnections: Int(10),
	}
}

// Source defines an interface for reading and writing the persisted configuration document.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Fetch returns the raw document. It returns an error wrapping
	// ErrSourceNotFound when the source does not exist.
	Fetch() ([]byte, error)
	// Write replaces the persisted document with data.
	Write(data []byte) error
}

// Codec defines an interface for converting a raw document to and from a key-value map.
type Codec interface {
	Decode(data []byte) (map[string]any, error)
	Encode(values map[string]any) ([]byte, error)
}

// Provider is the capability consumers depend on to read and write configuration.
type Provider interface {
	Get(key string) Value
	Set(key string, value Value)
}

var _ Provider = (*Store)(nil)

// Store holds configuration values in memory and loads/persists them through a Source.
// All methods are safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	source Source
	codec  Codec
	logger *slog.Logger
	values map[string]Value
}

// NewStore creates an empty Store backed by source and codec.
// Call Load to populate it.
func NewStore(source Source, codec Codec, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		mu:     sync.RWMutex{},
		source: source,
		codec:  codec,
		logger: logger,
		values: make(map[string]Value),
	}
}

// Source returns the name of the backing source.
func (s *Store) Source() string {
	return s.source.Name()
}

// Load replaces the in-memory values with the contents of the source, or with
// DefaultValues if the source does not exist. Values from the source are not
// merged with the defaults. On error the previous values are kept.
func (s *Store) Load() error {
	values, err := s.read()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()

	return nil
}

// Reload reads the source like Load but only swaps the values in when they
// differ from the current ones. It reports whether anything changed.
func (s *Store) Reload() (bool, error) {
	values, err := s.read()
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if maps.Equal(values, s.values) {
		return false, nil
	}

	s.values = values

	return true, nil
}

func (s *Store) read() (map[string]Value, error) {
	name := s.source.Name()

	data, err := s.source.Fetch()
	if err != nil {
		if errors.Is(err, ErrSourceNotFound) {
			s.logger.Info("config source not found, using defaults", slog.String("source", name))

			return DefaultValues(), nil
		}

		return nil, fmt.Errorf("%w: reading %q: %w", ErrIO, name, err)
	}

	raw, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %q: %w", ErrParse, name, err)
	}

	values := make(map[string]Value, len(raw))

	for key, item := range raw {
		value, err := ValueOf(item)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q in %q: %w", ErrParse, key, name, err)
		}

		values[key] = value
	}

	s.logger.Debug("config loaded", slog.String("source", name), slog.Int("keys", len(values)))

	return values, nil
}

// Get returns the value stored under key, or Absent.
func (s *Store) Get(key string) Value {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return Absent
	}

	return value
}

// Set stores value under key, replacing any previous value.
// Setting Absent removes the key.
func (s *Store) Set(key string, value Value) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !value.Present() {
		delete(s.values, key)

		return
	}

	s.values[key] = value
}

// Delete removes key. It is a no-op when the key is not present.
func (s *Store) Delete(key string) {
	s.Set(key, Absent)
}

// Keys returns the present keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.values))
}

// Snapshot returns a copy of the current values.
func (s *Store) Snapshot() map[string]Value {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.values)
}

// Persist writes the current values to the source, overwriting it.
func (s *Store) Persist() error {
	name := s.source.Name()

	s.mu.RLock()

	raw := make(map[string]any, len(s.values))
	for key, value := range s.values {
		raw[key] = value.Any()
	}

	s.mu.RUnlock()

	data, err := s.codec.Encode(raw)
	if err != nil {
		return fmt.Errorf("%w: encoding %q: %w", ErrEncode, name, err)
	}

	err = s.source.Write(data)
	if err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrIO, name, err)
	}

	s.logger.Info("config persisted", slog.String("source", name), slog.Int("keys", len(raw)))

	return nil
}
