package models

import "sync"

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LastActive int64  `json:"last_active"`
}

func (u *User) Clone() *User {
	cp := *u
	return &cp
}

// UserStore is the user directory. It is loaded from the snapshot at
// startup; updates and deletes stay in memory only, the directory file
// is never rewritten.
type UserStore struct {
	mu    sync.RWMutex
	users []*User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make([]*User, 0)}
}

func (s *UserStore) Replace(users []*User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if users == nil {
		users = make([]*User, 0)
	}
	s.users = users
}

func (s *UserStore) All() []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out
}

func (s *UserStore) FindByID(id string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u.Clone(), true
		}
	}
	return nil, false
}

// Update merges the non-nil fields into the stored user.
func (s *UserStore) Update(id string, name *string, lastActive *int64) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			if name != nil {
				u.Name = *name
			}
			if lastActive != nil {
				u.LastActive = *lastActive
			}
			return u.Clone(), nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *UserStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}

func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
