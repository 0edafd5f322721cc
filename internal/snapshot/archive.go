package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"moviebook/internal/providers"
	"moviebook/internal/snapshot/interfaces"
	"moviebook/internal/structures"
)

const archiveSuffix = ".json.zst"

// Archiver keeps zstd-compressed, timestamped copies of the live ledger
// snapshot in a side directory and prunes copies older than the
// configured TTL. The live snapshot itself stays plain JSON; the archive
// exists so an operator can roll the ledger back after a bad write.
type Archiver struct {
	mu         sync.Mutex
	dir        string
	ttl        time.Duration
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewArchiver(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *Archiver {
	return &Archiver{
		dir:        conf.Archive.Dir,
		ttl:        conf.Archive.TTL,
		compressor: compressor,
		logger:     logger,
	}
}

// Archive compresses the current content of snapshotPath into a new
// timestamped archive entry. Written atomically (tmp + rename).
func (a *Archiver) Archive(snapshotPath string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	data, err := os.ReadFile(snapshotPath)
	if err != nil {
		return fmt.Errorf("read snapshot for archiving: %w", err)
	}

	compressed, err := a.compressor.Compress(data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return err
	}

	name := fmt.Sprintf("bookings-%d%s", time.Now().UnixNano(), archiveSuffix)
	path := filepath.Join(a.dir, name)
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, compressed, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return err
	}
	return nil
}

// Prune removes archive entries older than the TTL. A zero TTL disables
// pruning.
func (a *Archiver) Prune() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ttl <= 0 {
		return nil
	}

	entries, err := filepath.Glob(filepath.Join(a.dir, "bookings-*"+archiveSuffix))
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-a.ttl)
	for _, path := range entries {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				a.logger.Errorf(providers.TypeApp, "Failed to prune archive %s: %s", path, err)
			}
		}
	}
	return nil
}

// Restore decompresses one archive entry back into snapshot JSON.
func (a *Archiver) Restore(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return a.compressor.Decompress(data)
}

// Entries lists the archive files, oldest first.
func (a *Archiver) Entries() ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(a.dir, "bookings-*"+archiveSuffix))
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (a *Archiver) Close() {
	a.compressor.Close()
}
