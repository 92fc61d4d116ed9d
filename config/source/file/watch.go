package file

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherStarted is returned when Start is called on a running Watcher.
var ErrWatcherStarted = errors.New("watcher already started")

// ErrNilCallback is returned when a Watcher is created without a callback.
var ErrNilCallback = errors.New("callback must not be nil")

// Watcher calls a callback whenever the watched file is created or written.
// Removing or renaming the file away does not trigger the callback.
// The parent directory is watched so editors that save by rename are noticed.
type Watcher struct {
	path     string
	onChange func()
	logger   *slog.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher creates a Watcher for path. Call Start to begin watching.
func NewWatcher(path string, onChange func(), logger *slog.Logger) (*Watcher, error) {
	if onChange == nil {
		return nil, ErrNilCallback
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		logger:   logger,
		mu:       sync.Mutex{},
		watcher:  nil,
		done:     nil,
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start(_ context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher != nil {
		return ErrWatcherStarted
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	dir := filepath.Dir(w.path)

	err = watcher.Add(dir)
	if err != nil {
		_ = watcher.Close()

		return fmt.Errorf("watching directory %q: %w", dir, err)
	}

	w.watcher = watcher
	w.done = make(chan struct{})

	w.logger.Info("watching config file", slog.String("path", w.path))

	go w.loop(watcher, w.done)

	return nil
}

func (w *Watcher) loop(watcher *fsnotify.Watcher, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.path {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debug("config file changed", slog.String("path", w.path), slog.String("op", event.Op.String()))
				w.onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			w.logger.Error("config watcher error", slog.String("path", w.path), slog.Any("error", err))
		}
	}
}

// Stop stops watching and waits for the background goroutine to exit.
// Stopping a Watcher that was never started is a no-op.
func (w *Watcher) Stop(ctx context.Context) error {
	w.mu.Lock()
	watcher, done := w.watcher, w.done
	w.watcher, w.done = nil, nil
	w.mu.Unlock()

	if watcher == nil {
		return nil
	}

	err := watcher.Close()
	if err != nil {
		return fmt.Errorf("closing watcher: %w", err)
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for watcher: %w", ctx.Err())
	}
}
