package interfaces

// SchedulerInterface is the per-service lifecycle hook: Restore loads
// state at startup, Init starts background jobs, Stop halts them and
// Persist flushes state during shutdown.
type SchedulerInterface interface {
	Init()
	Stop()
	Restore() error
	Persist() error
}

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	Close()
}
