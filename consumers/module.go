package consumers

import (
	"go.uber.org/fx"
)

// ConsoleTag is the DI name tag of the io.Writer consumers write to.
const ConsoleTag = `name:"console"`

// Module provides DatabaseConnection, APIClient and Logger to the Fx container.
// It requires a config.Provider and an io.Writer tagged with ConsoleTag.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module() fx.Option {
	return fx.Module("consumers",
		fx.Provide(
			fx.Annotate(NewDatabaseConnection, fx.ParamTags("", ConsoleTag)),
			fx.Annotate(NewAPIClient, fx.ParamTags("", ConsoleTag)),
			fx.Annotate(NewLogger, fx.ParamTags("", ConsoleTag)),
		),
	)
}
