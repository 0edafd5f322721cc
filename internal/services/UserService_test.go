package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviebook/internal/models"
)

func newUserFixture() UserServiceInterface {
	store := models.NewUserStore()
	store.Replace([]*models.User{
		{ID: "chris_rivers", Name: "Chris Rivers", LastActive: 1360031010},
		{ID: "dwight_schrute", Name: "Dwight Schrute", LastActive: 1360031625},
	})
	return NewUserService(store)
}

func TestUserService_GetUser(t *testing.T) {
	svc := newUserFixture()

	u, err := svc.GetUser("chris_rivers")
	require.NoError(t, err)
	assert.Equal(t, "Chris Rivers", u.Name)

	_, err = svc.GetUser("nobody")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserService_UpdateUser(t *testing.T) {
	svc := newUserFixture()

	name := "Christopher Rivers"
	u, err := svc.UpdateUser("chris_rivers", &UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Christopher Rivers", u.Name)
	assert.Equal(t, int64(1360031010), u.LastActive)

	_, err = svc.UpdateUser("nobody", &UserUpdate{Name: &name})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc := newUserFixture()

	require.NoError(t, svc.DeleteUser("dwight_schrute"))
	assert.Equal(t, 1, svc.GetRecordCount())
	assert.ErrorIs(t, svc.DeleteUser("dwight_schrute"), models.ErrUserNotFound)
}

func TestUserUpdate_Empty(t *testing.T) {
	assert.True(t, (&UserUpdate{}).Empty())
	name := "x"
	assert.False(t, (&UserUpdate{Name: &name}).Empty())
	la := int64(1)
	assert.False(t, (&UserUpdate{LastActive: &la}).Empty())
}

func TestShowtimeService(t *testing.T) {
	store := models.NewScheduleStore()
	store.Replace([]*models.Showtime{
		{Date: "20151130", Movies: []string{"movie-a"}},
	})
	svc := NewShowtimeService(store)

	assert.Len(t, svc.GetSchedule(), 1)
	assert.Equal(t, 1, svc.GetRecordCount())

	st, err := svc.GetByDate("20151130")
	require.NoError(t, err)
	assert.Equal(t, []string{"movie-a"}, st.Movies)

	_, err = svc.GetByDate("20160101")
	assert.ErrorIs(t, err, models.ErrDateNotFound)
}
