// Command configdemo shows several components sharing one configuration store.
//
// It connects a simulated database, issues a simulated API request and logs a
// message, then turns debug_mode off through the shared provider and logs
// again; the second message is suppressed. Configuration is read from
// config.json next to the binary, or defaults when that file is absent.
package main

import (
	"log/slog"

	settings "github.com/0xalexb/hjarta-settings"
	"github.com/0xalexb/hjarta-settings/config"
	"github.com/0xalexb/hjarta-settings/consumers"

	"go.uber.org/fx"
)

func main() {
	err := run()
	if err != nil {
		slog.Error("demo failed", slog.Any("error", err))
	}
}

func run(opts ...settings.Option) error {
	opts = append([]settings.Option{
		settings.WithLogLevel("warn"),
		settings.WithLogFormat("text"),
		settings.WithModules(fx.Module("demo", fx.Invoke(demo))),
	}, opts...)

	app := settings.NewApp(opts...)

	err := app.Start()
	if err != nil {
		return err
	}

	return app.Stop()
}

func demo(
	provider config.Provider,
	database *consumers.DatabaseConnection,
	client *consumers.APIClient,
	logger *consumers.Logger,
	log *slog.Logger,
) {
	log.Info("starting demo", slog.String("version", settings.Version), slog.String("compiled_at", settings.CompiledAt))

	database.Connect()
	client.MakeRequest("/users")
	logger.Log("Application started")

	provider.Set(config.KeyDebugMode, config.Bool(false))
	logger.Log("This should not appear")
}
