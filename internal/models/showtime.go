package models

import "sync"

// Showtime lists the movie ids playing on one date.
type Showtime struct {
	Date   string   `json:"date"`
	Movies []string `json:"movies"`
}

func (st *Showtime) Clone() *Showtime {
	movies := make([]string, len(st.Movies))
	copy(movies, st.Movies)
	return &Showtime{Date: st.Date, Movies: movies}
}

// ScheduleStore is the showtime service's in-memory schedule. The
// service never mutates it after load, but lookups still copy so the
// store could grow a reload path without breaking callers.
type ScheduleStore struct {
	mu       sync.RWMutex
	schedule []*Showtime
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{schedule: make([]*Showtime, 0)}
}

func (s *ScheduleStore) Replace(schedule []*Showtime) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if schedule == nil {
		schedule = make([]*Showtime, 0)
	}
	s.schedule = schedule
}

func (s *ScheduleStore) All() []*Showtime {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Showtime, len(s.schedule))
	for i, st := range s.schedule {
		out[i] = st.Clone()
	}
	return out
}

func (s *ScheduleStore) FindByDate(date string) (*Showtime, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.schedule {
		if st.Date == date {
			return st.Clone(), true
		}
	}
	return nil, false
}

func (s *ScheduleStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.schedule)
}
