package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"moviebook/internal/models"
	"moviebook/internal/providers"
	"moviebook/internal/snapshot"
	"moviebook/internal/structures"
)

const (
	cacheKeyAllBookings  = "bookings:all"
	cacheKeyUserBookings = "bookings:user:"
)

// AvailabilityOracle answers whether a movie is bookable on a date.
// A nil return means available; models.ErrMovieUnavailable means the
// date resolved but the movie is not offered; models.ErrOracleUnreachable
// means the answer could not be obtained.
type AvailabilityOracle interface {
	CheckAvailability(ctx context.Context, date, movieid string) error
}

type BookingServiceInterface interface {
	AddBooking(ctx context.Context, userid, date, movieid string) error
	GetBookings() []*models.BookingRecord
	GetBookingsByUser(userid string) (*models.BookingRecord, error)
	GetRecordCount() int
}

// BookingService implements the check-then-commit booking workflow. The
// whole read-modify-write-persist sequence runs under commitMu, so two
// concurrent bookings cannot interleave and lose an update; the oracle
// check deliberately stays outside the lock (no isolation between check
// and commit, the showtime data is volatile either way).
type BookingService struct {
	conf     *structures.Config
	logger   providers.Logger
	ledger   *models.LedgerStore
	oracle   AvailabilityOracle
	fm       *snapshot.FileManager
	cache    providers.CacheProviderInterface
	metrics  providers.MetricsProviderInterface
	commitMu sync.Mutex
}

func NewBookingService(conf *structures.Config, logger providers.Logger, ledger *models.LedgerStore, oracle AvailabilityOracle, fm *snapshot.FileManager, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) BookingServiceInterface {
	return &BookingService{
		conf:    conf,
		logger:  logger,
		ledger:  ledger,
		oracle:  oracle,
		fm:      fm,
		cache:   cache,
		metrics: metrics,
	}
}

// AddBooking validates the request, asks the oracle whether the movie
// runs on the date and, only then, mutates and persists the ledger.
// Rejections happen before any mutation; a failed persist surfaces as
// models.ErrPersistence and the caller must not assume the booking
// committed.
func (bs *BookingService) AddBooking(ctx context.Context, userid, date, movieid string) error {
	if userid == "" || date == "" || movieid == "" {
		return models.ErrInvalidInput
	}

	if err := bs.oracle.CheckAvailability(ctx, date, movieid); err != nil {
		switch {
		case errors.Is(err, models.ErrMovieUnavailable):
			bs.metrics.IncOracleRequests("unavailable")
		default:
			bs.metrics.IncOracleRequests("unreachable")
			bs.logger.Errorf(providers.TypeApp, "Availability check failed for date=%s movie=%s: %s", date, movieid, err)
		}
		return err
	}
	bs.metrics.IncOracleRequests("available")

	bs.commitMu.Lock()
	defer bs.commitMu.Unlock()

	bs.ledger.Apply(userid, date, movieid)
	if err := bs.fm.Save(bs.conf.Persistence.FilePath, bs.ledger.Snapshot()); err != nil {
		bs.logger.Errorf(providers.TypeApp, "Persisting ledger after booking failed: %s", err)
		return fmt.Errorf("%w: %s", models.ErrPersistence, err)
	}

	bs.cache.Del(cacheKeyAllBookings)
	bs.cache.Del(cacheKeyUserBookings + userid)
	bs.metrics.SetRecordsTotal("bookings", bs.ledger.Len())
	bs.logger.Infof(providers.TypeApp, "Booked movie %s on %s for user %s", movieid, date, userid)
	return nil
}

func (bs *BookingService) GetBookings() []*models.BookingRecord {
	return bs.ledger.All()
}

func (bs *BookingService) GetBookingsByUser(userid string) (*models.BookingRecord, error) {
	rec, ok := bs.ledger.FindByUser(userid)
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return rec, nil
}

func (bs *BookingService) GetRecordCount() int {
	return bs.ledger.Len()
}
