package config_test

import (
	"fmt"
	"sync"

	"github.com/0xalexb/hjarta-settings/config"
)

// memSource is an in-memory config.Source. A nil data slice means the source does not exist.
type memSource struct {
	mu       sync.Mutex
	name     string
	data     []byte
	fetchErr error
	writeErr error
	fetches  int
}

func newMemSource(name string, data []byte) *memSource {
	return &memSource{name: name, data: data}
}

func (m *memSource) Name() string {
	return m.name
}

func (m *memSource) Fetch() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fetches++

	if m.fetchErr != nil {
		return nil, m.fetchErr
	}

	if m.data == nil {
		return nil, fmt.Errorf("%w: %q", config.ErrSourceNotFound, m.name)
	}

	return append([]byte(nil), m.data...), nil
}

func (m *memSource) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}

	m.data = append([]byte(nil), data...)

	return nil
}

func (m *memSource) contents() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.data
}

func (m *memSource) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.fetches
}

type mockCodec struct {
	decodeFunc func(data []byte) (map[string]any, error)
	encodeFunc func(values map[string]any) ([]byte, error)
}

func (m *mockCodec) Decode(data []byte) (map[string]any, error) {
	return m.decodeFunc(data)
}

func (m *mockCodec) Encode(values map[string]any) ([]byte, error) {
	return m.encodeFunc(values)
}
