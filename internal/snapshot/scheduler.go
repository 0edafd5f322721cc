package snapshot

import (
	"sync"

	"github.com/roylee0704/gron"

	"moviebook/internal/models"
	"moviebook/internal/providers"
	"moviebook/internal/snapshot/interfaces"
	"moviebook/internal/structures"
)

// Scheduler is the booking service lifecycle: it loads the ledger
// snapshot at startup, runs the periodic archive job while the service
// is up and flushes the ledger on shutdown. The booking coordinator
// persists synchronously on every commit, so the shutdown persist is a
// consistency flush, not the primary write path.
type Scheduler struct {
	config   *structures.Config
	logger   providers.Logger
	ledger   *models.LedgerStore
	fm       *FileManager
	archiver *Archiver
	metrics  providers.MetricsProviderInterface
	cron     *gron.Cron
	opsMu    sync.Mutex
}

func (s *Scheduler) Init() {
	if !s.config.Archive.Enabled || s.config.Archive.Interval <= 0 {
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Archive.Interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		if err := s.archiver.Archive(s.config.Persistence.FilePath); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while archiving snapshot: %s", err)
			return
		}
		if err := s.archiver.Prune(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while pruning archive: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Archived snapshot %s", s.config.Persistence.FilePath)
	})
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore loads the ledger snapshot. Failure is fatal to startup; the
// app does not start without its backing document.
func (s *Scheduler) Restore() error {
	var snap models.LedgerSnapshot
	if err := s.fm.Load(s.config.Persistence.FilePath, &snap); err != nil {
		return err
	}
	s.ledger.Replace(snap.Bookings)
	s.metrics.SetRecordsTotal("bookings", s.ledger.Len())
	s.logger.Infof(providers.TypeApp, "Restored %d booking records", s.ledger.Len())
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting ledger to file...")
	if err := s.fm.Save(s.config.Persistence.FilePath, s.ledger.Snapshot()); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting ledger: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, ledger *models.LedgerStore, fm *FileManager, archiver *Archiver, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		ledger:   ledger,
		fm:       fm,
		archiver: archiver,
		metrics:  metrics,
	}
}
