package models

import "sync"

// LedgerStore holds the authoritative in-memory list of booking records.
// The whole collection is resident for the process lifetime; persistence
// is a full-snapshot rewrite handled by the caller. Accessors hand out
// deep copies so callers never alias live entries.
type LedgerStore struct {
	mu      sync.RWMutex
	records []*BookingRecord
}

func NewLedgerStore() *LedgerStore {
	return &LedgerStore{records: make([]*BookingRecord, 0)}
}

// Replace installs a freshly loaded snapshot.
func (s *LedgerStore) Replace(records []*BookingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if records == nil {
		records = make([]*BookingRecord, 0)
	}
	s.records = records
}

func (s *LedgerStore) All() []*BookingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*BookingRecord, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Clone()
	}
	return out
}

func (s *LedgerStore) FindByUser(userid string) (*BookingRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.UserID == userid {
			return rec.Clone(), true
		}
	}
	return nil, false
}

// Apply performs the read-modify-write for one booking: it creates the
// user record on first booking, creates the date entry on first booking
// for that date, and otherwise appends the movie id to the existing
// entry. Serialization of Apply against the snapshot write is the
// coordinator's job; this method only guards the in-memory list.
func (s *LedgerStore) Apply(userid, date, movieid string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if rec.UserID == userid {
			rec.add(date, movieid)
			return
		}
	}
	s.records = append(s.records, &BookingRecord{
		UserID: userid,
		Dates:  []*DateEntry{{Date: date, Movies: []string{movieid}}},
	})
}

func (s *LedgerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Snapshot returns the persistence envelope with a deep copy of the
// current state.
func (s *LedgerStore) Snapshot() *LedgerSnapshot {
	return &LedgerSnapshot{Bookings: s.All()}
}
