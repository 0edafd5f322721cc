package models

import (
	"strings"
	"sync"
)

type Movie struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Rating   float64 `json:"rating"`
}

func (m *Movie) Clone() *Movie {
	cp := *m
	return &cp
}

// MovieStore holds the movie catalog. Mutations go through UpdateRating,
// Add and Delete; the movie service persists the snapshot after each.
type MovieStore struct {
	mu     sync.RWMutex
	movies []*Movie
}

func NewMovieStore() *MovieStore {
	return &MovieStore{movies: make([]*Movie, 0)}
}

func (s *MovieStore) Replace(movies []*Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if movies == nil {
		movies = make([]*Movie, 0)
	}
	s.movies = movies
}

func (s *MovieStore) All() []*Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Movie, len(s.movies))
	for i, m := range s.movies {
		out[i] = m.Clone()
	}
	return out
}

func (s *MovieStore) FindByID(id string) (*Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.movies {
		if m.ID == id {
			return m.Clone(), true
		}
	}
	return nil, false
}

func (s *MovieStore) FindByTitle(title string) []*Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Movie, 0)
	for _, m := range s.movies {
		if m.Title == title {
			out = append(out, m.Clone())
		}
	}
	return out
}

func (s *MovieStore) FindByDirector(director string) []*Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Movie, 0)
	for _, m := range s.movies {
		if strings.EqualFold(m.Director, director) {
			out = append(out, m.Clone())
		}
	}
	return out
}

// FindByRating returns movies rated at least min.
func (s *MovieStore) FindByRating(min float64) []*Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Movie, 0)
	for _, m := range s.movies {
		if m.Rating >= min {
			out = append(out, m.Clone())
		}
	}
	return out
}

func (s *MovieStore) UpdateRating(id string, rating float64) (*Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movies {
		if m.ID == id {
			m.Rating = rating
			return m.Clone(), nil
		}
	}
	return nil, ErrMovieNotFound
}

func (s *MovieStore) Add(movie *Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movies {
		if m.ID == movie.ID {
			return ErrMovieExists
		}
	}
	s.movies = append(s.movies, movie.Clone())
	return nil
}

func (s *MovieStore) Delete(id string) (*Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.movies {
		if m.ID == id {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			return m, nil
		}
	}
	return nil, ErrMovieNotFound
}

func (s *MovieStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}

func (s *MovieStore) Snapshot() *MovieSnapshot {
	return &MovieSnapshot{Movies: s.All()}
}
