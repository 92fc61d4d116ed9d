package config_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/0xalexb/hjarta-settings/config"
	jsoncodec "github.com/0xalexb/hjarta-settings/config/codec/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memOpener resolves names to in-memory sources, creating missing ones on demand.
type memOpener struct {
	mu      sync.Mutex
	sources map[string]*memSource
	opened  []string
}

func newMemOpener(sources ...*memSource) *memOpener {
	opener := &memOpener{sources: make(map[string]*memSource)}
	for _, source := range sources {
		opener.sources[source.name] = source
	}

	return opener
}

func (o *memOpener) open(name string) (config.Source, config.Codec, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.opened = append(o.opened, name)

	source, ok := o.sources[name]
	if !ok {
		source = newMemSource(name, nil)
		o.sources[name] = source
	}

	return source, jsoncodec.NewCodec(), nil
}

func TestRegistry_Instance_IdentityStable(t *testing.T) {
	t.Parallel()

	opener := newMemOpener()
	registry := config.NewRegistry(opener.open, nil)

	first, err := registry.Instance("")
	require.NoError(t, err)

	for range 5 {
		again, err := registry.Instance("")
		require.NoError(t, err)
		assert.Same(t, first, again)
	}

	named, err := registry.Instance(config.DefaultSourceName)
	require.NoError(t, err)
	assert.Same(t, first, named)
	assert.Equal(t, []string{config.DefaultSourceName}, opener.opened, "source should be opened once")
}

func TestRegistry_Instance_DefaultsWhenNoSource(t *testing.T) {
	t.Parallel()

	registry := config.NewRegistry(newMemOpener().open, nil)

	store, err := registry.Instance("")
	require.NoError(t, err)

	assert.Equal(t, config.Int(10), store.Get("max_connections"))
}

func TestRegistry_Instance_SetVisibleThroughEveryReference(t *testing.T) {
	t.Parallel()

	registry := config.NewRegistry(newMemOpener().open, nil)

	first, err := registry.Instance("")
	require.NoError(t, err)

	second, err := registry.Instance("")
	require.NoError(t, err)

	var writer, reader config.Provider = first, second

	writer.Set("debug_mode", config.Bool(false))
	assert.Equal(t, config.Bool(false), reader.Get("debug_mode"))

	reader.Set("feature", config.String("on"))
	assert.Equal(t, config.String("on"), writer.Get("feature"))
}

func TestRegistry_Instance_ConflictingSource(t *testing.T) {
	t.Parallel()

	opener := newMemOpener()
	registry := config.NewRegistry(opener.open, nil)

	store, err := registry.Instance("app.json")
	require.NoError(t, err)

	other, err := registry.Instance("other.json")
	require.ErrorIs(t, err, config.ErrSourceConflict)
	assert.Nil(t, other)

	same, err := registry.Instance("")
	require.NoError(t, err)
	assert.Same(t, store, same)
	assert.Equal(t, []string{"app.json"}, opener.opened)
}

func TestRegistry_Instance_ParseErrorPropagates(t *testing.T) {
	t.Parallel()

	source := newMemSource(config.DefaultSourceName, []byte(`{not json`))
	registry := config.NewRegistry(newMemOpener(source).open, nil)

	store, err := registry.Instance("")
	require.ErrorIs(t, err, config.ErrParse)
	assert.Nil(t, store)
}

func TestRegistry_Instance_RetriesAfterFailedLoad(t *testing.T) {
	t.Parallel()

	source := newMemSource(config.DefaultSourceName, []byte(`{not json`))
	registry := config.NewRegistry(newMemOpener(source).open, nil)

	_, err := registry.Instance("")
	require.ErrorIs(t, err, config.ErrParse)

	require.NoError(t, source.Write([]byte(`{"api_key": "fixed"}`)))

	store, err := registry.Instance("")
	require.NoError(t, err)
	assert.Equal(t, config.String("fixed"), store.Get("api_key"))
	assert.Equal(t, 2, source.fetchCount())
}

func TestRegistry_Instance_OpenerError(t *testing.T) {
	t.Parallel()

	openErr := errors.New("unknown format")
	registry := config.NewRegistry(func(_ string) (config.Source, config.Codec, error) {
		return nil, nil, openErr
	}, nil)

	store, err := registry.Instance("config.ini")
	require.ErrorIs(t, err, openErr)
	assert.Nil(t, store)
}

func TestRegistry_Instance_NilOpener(t *testing.T) {
	t.Parallel()

	registry := config.NewRegistry(nil, nil)

	_, err := registry.Instance("")
	require.ErrorIs(t, err, config.ErrNilOpener)
}

func TestRegistry_Instance_ConcurrentFirstAccess(t *testing.T) {
	t.Parallel()

	source := newMemSource(config.DefaultSourceName, nil)
	registry := config.NewRegistry(newMemOpener(source).open, nil)

	const callers = 16

	stores := make([]*config.Store, callers)

	var wg sync.WaitGroup

	for i := range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			store, err := registry.Instance("")
			assert.NoError(t, err)

			stores[i] = store
		}()
	}

	wg.Wait()

	for _, store := range stores {
		assert.Same(t, stores[0], store)
	}

	assert.Equal(t, 1, source.fetchCount(), "store should be loaded exactly once")
}

func TestRegistry_PersistSurvivesRestart(t *testing.T) {
	t.Parallel()

	source := newMemSource(config.DefaultSourceName, nil)

	store, err := config.NewRegistry(newMemOpener(source).open, nil).Instance("")
	require.NoError(t, err)

	store.Set("max_connections", config.Int(50))
	store.Set("debug_mode", config.Bool(false))
	require.NoError(t, store.Persist())

	restarted, err := config.NewRegistry(newMemOpener(source).open, nil).Instance("")
	require.NoError(t, err)

	assert.NotSame(t, store, restarted)
	assert.Equal(t, store.Snapshot(), restarted.Snapshot())
}

func TestRegistry_UnpersistedChangesAreLostOnRestart(t *testing.T) {
	t.Parallel()

	source := newMemSource(config.DefaultSourceName, nil)

	store, err := config.NewRegistry(newMemOpener(source).open, nil).Instance("")
	require.NoError(t, err)

	store.Set("debug_mode", config.Bool(false))

	restarted, err := config.NewRegistry(newMemOpener(source).open, nil).Instance("")
	require.NoError(t, err)

	assert.Equal(t, config.Bool(true), restarted.Get("debug_mode"))
}
