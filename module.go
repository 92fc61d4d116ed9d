package settings

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/0xalexb/hjarta-settings/config"
	"github.com/0xalexb/hjarta-settings/config/codec"
	"github.com/0xalexb/hjarta-settings/config/source/file"

	"go.uber.org/fx"
)

// FileOpener returns a config.Opener resolving source names to files inside
// baseDir. The codec is picked from the file extension.
func FileOpener(baseDir string) config.Opener {
	return func(name string) (config.Source, config.Codec, error) {
		source, err := file.NewSource(baseDir, name)
		if err != nil {
			return nil, nil, err
		}

		sourceCodec, err := codec.ForPath(name)
		if err != nil {
			return nil, nil, err
		}

		return source, sourceCodec, nil
	}
}

// ConfigModule creates an Fx module providing the shared configuration.
//
// The container holds one *config.Registry; *config.Store is the registry's
// instance for source, and config.Provider is that same store seen through the
// consumer interface. An empty baseDir resolves sources next to the running
// executable. With watch set, the store is reloaded whenever its file changes;
// if the directory holding the file does not exist, watching is skipped with a
// warning and the store keeps the values it was loaded with.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func ConfigModule(baseDir, source string, watch bool) fx.Option {
	if baseDir == "" {
		baseDir = file.ExecutableDir()
	}

	moduleOpts := []fx.Option{
		fx.Provide(
			func(logger *slog.Logger) *config.Registry {
				return config.NewRegistry(FileOpener(baseDir), logger)
			},
			func(registry *config.Registry) (*config.Store, error) {
				return registry.Instance(source)
			},
			fx.Annotate(
				func(store *config.Store) *config.Store { return store },
				fx.As(new(config.Provider)),
			),
		),
	}

	if watch {
		moduleOpts = append(moduleOpts, fx.Invoke(watchStore))
	}

	return fx.Module("config", moduleOpts...)
}

func watchStore(lifecycle fx.Lifecycle, store *config.Store, logger *slog.Logger) error {
	dir := filepath.Dir(store.Source())

	_, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("config directory does not exist, not watching for changes",
			slog.String("source", store.Source()), slog.String("dir", dir))

		return nil
	}

	reload := func() {
		changed, err := store.Reload()
		if err != nil {
			logger.Error("failed to reload config", slog.String("source", store.Source()), slog.Any("error", err))

			return
		}

		if changed {
			logger.Info("config reloaded", slog.String("source", store.Source()))
		}
	}

	watcher, err := file.NewWatcher(store.Source(), reload, logger)
	if err != nil {
		return err
	}

	lifecycle.Append(fx.Hook{
		OnStart: watcher.Start,
		OnStop:  watcher.Stop,
	})

	return nil
}
