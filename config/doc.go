// Package config provides a shared key-value configuration store and the
// access contract consumers use to read and write it.
//
// The package is built around a few extension points:
//   - Source: reads and writes the raw persisted document (file, memory, etc.)
//   - Codec: converts the raw document to and from a key-value map
//   - Provider: the capability consumers depend on ({Get, Set})
//
// # Lifecycle
//
// A Registry owns at most one Store. The first call to Registry.Instance
// opens the source, loads it and keeps the resulting Store; every later call
// returns the same *Store. When the source does not exist the store is seeded
// with DefaultValues. A source that exists but cannot be read or decoded is a
// hard error: nothing is cached and the caller gets ErrIO or ErrParse.
//
// # Example
//
//	registry := config.NewRegistry(opener, logger)
//
//	store, err := registry.Instance("")
//	if err != nil {
//	    return err
//	}
//
//	store.Set("debug_mode", config.Bool(false))
//	debug, _ := store.Get("debug_mode").AsBool()
package config
