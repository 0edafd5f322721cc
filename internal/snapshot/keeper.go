package snapshot

import (
	"moviebook/internal/models"
	"moviebook/internal/providers"
	"moviebook/internal/snapshot/interfaces"
	"moviebook/internal/structures"
)

// keeper is the lifecycle for services without background jobs: restore
// at startup, optional persist at shutdown.
type keeper struct {
	logger  providers.Logger
	restore func() error
	persist func() error
}

func (k *keeper) Init() {}
func (k *keeper) Stop() {}

func (k *keeper) Restore() error {
	return k.restore()
}

func (k *keeper) Persist() error {
	if k.persist == nil {
		return nil
	}
	return k.persist()
}

// NewScheduleKeeper loads the showtime schedule. The schedule is
// read-only, so there is nothing to persist.
func NewScheduleKeeper(conf *structures.Config, logger providers.Logger, store *models.ScheduleStore, fm *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &keeper{
		logger: logger,
		restore: func() error {
			var snap models.ScheduleSnapshot
			if err := fm.Load(conf.Persistence.FilePath, &snap); err != nil {
				return err
			}
			store.Replace(snap.Schedule)
			metrics.SetRecordsTotal("schedule", store.Len())
			logger.Infof(providers.TypeApp, "Restored %d schedule entries", store.Len())
			return nil
		},
	}
}

// NewCatalogKeeper loads movies and actors. Mutations persist inline in
// the movie service, so the shutdown persist is only a flush.
func NewCatalogKeeper(conf *structures.Config, logger providers.Logger, movies *models.MovieStore, actors *models.ActorStore, fm *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &keeper{
		logger: logger,
		restore: func() error {
			var movieSnap models.MovieSnapshot
			if err := fm.Load(conf.Persistence.FilePath, &movieSnap); err != nil {
				return err
			}
			movies.Replace(movieSnap.Movies)

			if conf.Persistence.ActorsPath != "" {
				var actorSnap models.ActorSnapshot
				if err := fm.Load(conf.Persistence.ActorsPath, &actorSnap); err != nil {
					return err
				}
				actors.Replace(actorSnap.Actors)
			}

			metrics.SetRecordsTotal("movies", movies.Len())
			logger.Infof(providers.TypeApp, "Restored %d movies, %d actors", movies.Len(), actors.Len())
			return nil
		},
		persist: func() error {
			return fm.Save(conf.Persistence.FilePath, movies.Snapshot())
		},
	}
}

// NewDirectoryKeeper loads the user directory. User mutations are kept
// in memory only; the directory file is never rewritten.
func NewDirectoryKeeper(conf *structures.Config, logger providers.Logger, store *models.UserStore, fm *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &keeper{
		logger: logger,
		restore: func() error {
			var snap models.UserSnapshot
			if err := fm.Load(conf.Persistence.FilePath, &snap); err != nil {
				return err
			}
			store.Replace(snap.Users)
			metrics.SetRecordsTotal("users", store.Len())
			logger.Infof(providers.TypeApp, "Restored %d users", store.Len())
			return nil
		},
	}
}
