package services

import (
	"fmt"
	"sync"

	"moviebook/internal/models"
	"moviebook/internal/providers"
	"moviebook/internal/snapshot"
	"moviebook/internal/structures"
)

type MovieServiceInterface interface {
	AllMovies() []*models.Movie
	MovieWithID(id string) (*models.Movie, error)
	MovieWithTitle(title string) []*models.Movie
	MovieWithDirector(director string) []*models.Movie
	MovieWithRating(min float64) ([]*models.Movie, error)
	ActorsFor(movieID string) []*models.Actor
	UpdateRate(id string, rate float64) (*models.Movie, error)
	AddMovie(movie *models.Movie) (*models.Movie, error)
	DeleteMovie(id string) (*models.Movie, error)
	GetRecordCount() int
}

// MovieService wraps the catalog stores and persists the movie snapshot
// after every mutation. Mutate-and-persist runs under commitMu so two
// mutations cannot interleave their snapshot rewrites.
type MovieService struct {
	conf     *structures.Config
	logger   providers.Logger
	movies   *models.MovieStore
	actors   *models.ActorStore
	fm       *snapshot.FileManager
	cache    providers.CacheProviderInterface
	metrics  providers.MetricsProviderInterface
	commitMu sync.Mutex
}

func NewMovieService(conf *structures.Config, logger providers.Logger, movies *models.MovieStore, actors *models.ActorStore, fm *snapshot.FileManager, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) MovieServiceInterface {
	return &MovieService{
		conf:    conf,
		logger:  logger,
		movies:  movies,
		actors:  actors,
		fm:      fm,
		cache:   cache,
		metrics: metrics,
	}
}

func (ms *MovieService) AllMovies() []*models.Movie {
	return ms.movies.All()
}

func (ms *MovieService) MovieWithID(id string) (*models.Movie, error) {
	m, ok := ms.movies.FindByID(id)
	if !ok {
		return nil, models.ErrMovieNotFound
	}
	return m, nil
}

func (ms *MovieService) MovieWithTitle(title string) []*models.Movie {
	return ms.movies.FindByTitle(title)
}

func (ms *MovieService) MovieWithDirector(director string) []*models.Movie {
	return ms.movies.FindByDirector(director)
}

func (ms *MovieService) MovieWithRating(min float64) ([]*models.Movie, error) {
	if min < 0 || min > 10 {
		return nil, fmt.Errorf("rating must be between 0 and 10")
	}
	return ms.movies.FindByRating(min), nil
}

func (ms *MovieService) ActorsFor(movieID string) []*models.Actor {
	return ms.actors.ForMovie(movieID)
}

func (ms *MovieService) UpdateRate(id string, rate float64) (*models.Movie, error) {
	ms.commitMu.Lock()
	defer ms.commitMu.Unlock()

	m, err := ms.movies.UpdateRating(id, rate)
	if err != nil {
		return nil, err
	}
	if err := ms.persist(); err != nil {
		return nil, err
	}
	return m, nil
}

func (ms *MovieService) AddMovie(movie *models.Movie) (*models.Movie, error) {
	ms.commitMu.Lock()
	defer ms.commitMu.Unlock()

	if err := ms.movies.Add(movie); err != nil {
		return nil, err
	}
	if err := ms.persist(); err != nil {
		return nil, err
	}
	ms.metrics.SetRecordsTotal("movies", ms.movies.Len())
	return movie.Clone(), nil
}

func (ms *MovieService) DeleteMovie(id string) (*models.Movie, error) {
	ms.commitMu.Lock()
	defer ms.commitMu.Unlock()

	m, err := ms.movies.Delete(id)
	if err != nil {
		return nil, err
	}
	if err := ms.persist(); err != nil {
		return nil, err
	}
	ms.metrics.SetRecordsTotal("movies", ms.movies.Len())
	return m, nil
}

func (ms *MovieService) persist() error {
	if err := ms.fm.Save(ms.conf.Persistence.FilePath, ms.movies.Snapshot()); err != nil {
		ms.logger.Errorf(providers.TypeApp, "Persisting movie catalog failed: %s", err)
		return fmt.Errorf("%w: %s", models.ErrPersistence, err)
	}
	ms.cache.Del("movies:all")
	return nil
}

func (ms *MovieService) GetRecordCount() int {
	return ms.movies.Len()
}
