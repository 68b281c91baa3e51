//go:build wireinject
// +build wireinject

package di

import (
	"chatsplit/internal"
	"chatsplit/internal/archive"
	"chatsplit/internal/controllers"
	"chatsplit/internal/providers"
	"chatsplit/internal/services"
	"chatsplit/internal/structures"
	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewOutputProvider,

		archive.NewCompressorFromConfig,
		archive.NewLoader,
		archive.NewFileManager,
		services.NewDateKeyerFromConfig,
		services.NewGrouperService,
		controllers.NewArchiveController,
		internal.InitCommands,
		internal.NewApp,
	)

	return nil, nil
}
