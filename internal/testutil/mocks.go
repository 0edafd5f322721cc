package testutil

import (
	"context"
	"sync"
	"time"

	"moviebook/internal/models"
	"moviebook/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockCache implements providers.CacheProviderInterface over a plain map.
type MockCache struct {
	mu      sync.Mutex
	Data    map[string][]byte
	Deleted []string
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
	m.Deleted = append(m.Deleted, key)
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu             sync.Mutex
	Requests       map[string]int
	CacheHits      int
	CacheMisses    int
	OracleOutcomes map[string]int
	PersistCalls   int
	Records        map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Requests:       make(map[string]int),
		OracleOutcomes: make(map[string]int),
		Records:        make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint]++
}

func (m *MockMetrics) ObserveRequestDuration(endpoint string, duration time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncOracleRequests(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OracleOutcomes[outcome]++
}

func (m *MockMetrics) ObservePersistenceDuration(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistCalls++
}

func (m *MockMetrics) SetRecordsTotal(kind string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records[kind] = count
}

// MockOracle implements services.AvailabilityOracle with a fixed answer.
type MockOracle struct {
	mu    sync.Mutex
	Err   error
	Calls []OracleCall
}

type OracleCall struct {
	Date    string
	MovieID string
}

func (m *MockOracle) CheckAvailability(ctx context.Context, date, movieid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, OracleCall{Date: date, MovieID: movieid})
	return m.Err
}

func (m *MockOracle) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockBookingService implements services.BookingServiceInterface.
type MockBookingService struct {
	mu        sync.Mutex
	AddErr    error
	AddCalls  []AddBookingCall
	AllData   []*models.BookingRecord
	UserData  map[string]*models.BookingRecord
	UserErr   error
	RecordLen int
}

type AddBookingCall struct {
	UserID  string
	Date    string
	MovieID string
}

func (m *MockBookingService) AddBooking(ctx context.Context, userid, date, movieid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCalls = append(m.AddCalls, AddBookingCall{UserID: userid, Date: date, MovieID: movieid})
	return m.AddErr
}

func (m *MockBookingService) GetBookings() []*models.BookingRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.AllData
}

func (m *MockBookingService) GetBookingsByUser(userid string) (*models.BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UserErr != nil {
		return nil, m.UserErr
	}
	if m.UserData != nil {
		if rec, ok := m.UserData[userid]; ok {
			return rec, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (m *MockBookingService) GetRecordCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.RecordLen
}
