package services

import (
	"moviebook/internal/models"
)

// UserUpdate carries the mutable user fields; nil means "leave as is".
type UserUpdate struct {
	Name       *string `json:"name"`
	LastActive *int64  `json:"last_active"`
}

func (u *UserUpdate) Empty() bool {
	return u.Name == nil && u.LastActive == nil
}

type UserServiceInterface interface {
	GetUser(id string) (*models.User, error)
	UpdateUser(id string, update *UserUpdate) (*models.User, error)
	DeleteUser(id string) error
	GetRecordCount() int
}

// UserService owns the in-memory user directory. Mutations are not
// persisted; the directory file is read once at startup.
type UserService struct {
	users *models.UserStore
}

func NewUserService(users *models.UserStore) UserServiceInterface {
	return &UserService{users: users}
}

func (us *UserService) GetUser(id string) (*models.User, error) {
	u, ok := us.users.FindByID(id)
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

func (us *UserService) UpdateUser(id string, update *UserUpdate) (*models.User, error) {
	return us.users.Update(id, update.Name, update.LastActive)
}

func (us *UserService) DeleteUser(id string) error {
	return us.users.Delete(id)
}

func (us *UserService) GetRecordCount() int {
	return us.users.Len()
}
