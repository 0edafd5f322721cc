//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"moviebook/internal"
	"moviebook/internal/clients"
	"moviebook/internal/controllers"
	"moviebook/internal/models"
	"moviebook/internal/providers"
	"moviebook/internal/services"
	"moviebook/internal/snapshot"
	"moviebook/internal/structures"
)

func InitBookingApp(flags *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		models.NewLedgerStore,
		snapshot.NewFileManager,
		snapshot.NewZstdCompressor,
		snapshot.NewArchiver,
		snapshot.NewScheduler,
		clients.NewShowtimeClient,
		services.NewBookingService,
		provideBookingCounter,
		controllers.NewBookingController,
		controllers.NewHealthController,
		internal.InitBookingRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitShowtimeApp(flags *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		models.NewScheduleStore,
		snapshot.NewFileManager,
		snapshot.NewScheduleKeeper,
		services.NewShowtimeService,
		provideShowtimeCounter,
		controllers.NewShowtimeController,
		controllers.NewHealthController,
		internal.InitShowtimeRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitMovieApp(flags *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		models.NewMovieStore,
		models.NewActorStore,
		snapshot.NewFileManager,
		snapshot.NewCatalogKeeper,
		services.NewMovieService,
		provideMovieCounter,
		controllers.NewMovieController,
		controllers.NewHealthController,
		internal.InitMovieRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitUserApp(flags *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,

		models.NewUserStore,
		snapshot.NewFileManager,
		snapshot.NewDirectoryKeeper,
		clients.NewBookingClient,
		clients.NewMovieClient,
		services.NewUserService,
		provideUserCounter,
		controllers.NewUserController,
		controllers.NewHealthController,
		internal.InitUserRoutes,
		internal.NewApp,
	)

	return nil, nil
}
