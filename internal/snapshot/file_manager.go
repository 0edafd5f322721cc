package snapshot

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"moviebook/internal/providers"
)

// FileManager reads and writes store snapshots as single JSON documents.
// Save is atomic from the reader's point of view: the document is
// written to a temp file, fsynced and renamed over the target, so a
// concurrent reader sees either the old snapshot or the new one.
type FileManager struct {
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewFileManager(logger providers.Logger, metrics providers.MetricsProviderInterface) *FileManager {
	return &FileManager{
		logger:  logger,
		metrics: metrics,
	}
}

// Save serializes v indented and replaces fileName with it.
func (f *FileManager) Save(fileName string, v any) error {
	start := time.Now()

	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(jsonData)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err = os.Rename(tmpFile, fileName); err != nil {
		os.Remove(tmpFile)
		return err
	}

	f.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}

// Load reads fileName into v. A missing or malformed file is an error;
// the stores loaded with this are startup-time dependencies and the
// caller aborts the process on failure.
func (f *FileManager) Load(fileName string, v any) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("read snapshot %s: %w", fileName, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse snapshot %s: %w", fileName, err)
	}
	return nil
}
