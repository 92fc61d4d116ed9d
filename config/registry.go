package config

import (
	"fmt"
	"log/slog"
	"sync"
)

// DefaultSourceName is the source opened when no name is given.
const DefaultSourceName = "config.json"

// Opener resolves a source name into a Source and the Codec for its format.
type Opener func(name string) (Source, Codec, error)

// Registry hands out the single Store of a process.
// It is meant to be constructed once at program start and passed to whatever needs it.
type Registry struct {
	mu     sync.Mutex
	open   Opener
	logger *slog.Logger
	store  *Store
	source string
}

// NewRegistry creates a Registry that opens sources with open.
func NewRegistry(open Opener, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		mu:     sync.Mutex{},
		open:   open,
		logger: logger,
		store:  nil,
		source: "",
	}
}

// Instance returns the shared Store, constructing and loading it on the first call.
//
// An empty name selects DefaultSourceName on the first call and the already
// opened source afterwards. Asking for a different source once the store
// exists fails with ErrSourceConflict. If loading fails nothing is kept and
// the next call tries again.
func (r *Registry) Instance(name string) (*Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.store != nil {
		if name != "" && name != r.source {
			return nil, fmt.Errorf("%w: open %q, requested %q", ErrSourceConflict, r.source, name)
		}

		return r.store, nil
	}

	if name == "" {
		name = DefaultSourceName
	}

	if r.open == nil {
		return nil, ErrNilOpener
	}

	source, codec, err := r.open(name)
	if err != nil {
		return nil, fmt.Errorf("opening source %q: %w", name, err)
	}

	store := NewStore(source, codec, r.logger)

	err = store.Load()
	if err != nil {
		r.logger.Error("failed to load config", slog.String("source", source.Name()), slog.Any("error", err))

		return nil, err
	}

	r.store = store
	r.source = name

	r.logger.Info("config store initialized", slog.String("source", source.Name()))

	return store, nil
}
