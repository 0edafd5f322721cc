package models

import (
	"slices"
	"sync"
)

type Actor struct {
	ID        string   `json:"id"`
	Firstname string   `json:"firstname"`
	Lastname  string   `json:"lastname"`
	Birthyear int      `json:"birthyear"`
	Films     []string `json:"films"`
}

func (a *Actor) Clone() *Actor {
	films := make([]string, len(a.Films))
	copy(films, a.Films)
	cp := *a
	cp.Films = films
	return &cp
}

// ActorStore is read-only after load; actors are only queried by film
// membership when resolving a movie's cast.
type ActorStore struct {
	mu     sync.RWMutex
	actors []*Actor
}

func NewActorStore() *ActorStore {
	return &ActorStore{actors: make([]*Actor, 0)}
}

func (s *ActorStore) Replace(actors []*Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if actors == nil {
		actors = make([]*Actor, 0)
	}
	s.actors = actors
}

// ForMovie returns the actors whose filmography contains movieID.
func (s *ActorStore) ForMovie(movieID string) []*Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Actor, 0)
	for _, a := range s.actors {
		if slices.Contains(a.Films, movieID) {
			out = append(out, a.Clone())
		}
	}
	return out
}

func (s *ActorStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.actors)
}
