package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMovieStore() *MovieStore {
	s := NewMovieStore()
	s.Replace([]*Movie{
		{ID: "720d006c-3a57-4b6a-b18f-9b713b073f3c", Title: "The Good Dinosaur", Director: "Peter Sohn", Rating: 7.4},
		{ID: "a8034f44-aee4-44cf-b32c-74cf452aaaae", Title: "The Martian", Director: "Ridley Scott", Rating: 9.2},
		{ID: "96798c08-d19b-4986-a05d-7da856efb697", Title: "The Danish Girl", Director: "Tom Hooper", Rating: 5.3},
	})
	return s
}

func TestMovieStore_FindByID(t *testing.T) {
	s := seedMovieStore()
	m, ok := s.FindByID("a8034f44-aee4-44cf-b32c-74cf452aaaae")
	require.True(t, ok)
	assert.Equal(t, "The Martian", m.Title)

	_, ok = s.FindByID("missing")
	assert.False(t, ok)
}

func TestMovieStore_FindByIDReturnsCopy(t *testing.T) {
	s := seedMovieStore()
	m, _ := s.FindByID("a8034f44-aee4-44cf-b32c-74cf452aaaae")
	m.Rating = 1.0

	fresh, _ := s.FindByID("a8034f44-aee4-44cf-b32c-74cf452aaaae")
	assert.Equal(t, 9.2, fresh.Rating)
}

func TestMovieStore_FindByDirectorCaseInsensitive(t *testing.T) {
	s := seedMovieStore()
	got := s.FindByDirector("ridley scott")
	require.Len(t, got, 1)
	assert.Equal(t, "The Martian", got[0].Title)
}

func TestMovieStore_FindByRating(t *testing.T) {
	s := seedMovieStore()
	got := s.FindByRating(7.0)
	assert.Len(t, got, 2)

	got = s.FindByRating(9.5)
	assert.Empty(t, got)
}

func TestMovieStore_UpdateRating(t *testing.T) {
	s := seedMovieStore()
	m, err := s.UpdateRating("96798c08-d19b-4986-a05d-7da856efb697", 8.1)
	require.NoError(t, err)
	assert.Equal(t, 8.1, m.Rating)

	fresh, _ := s.FindByID("96798c08-d19b-4986-a05d-7da856efb697")
	assert.Equal(t, 8.1, fresh.Rating)
}

func TestMovieStore_UpdateRatingMissing(t *testing.T) {
	s := seedMovieStore()
	_, err := s.UpdateRating("missing", 5.0)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieStore_AddAndDuplicate(t *testing.T) {
	s := seedMovieStore()
	err := s.Add(&Movie{ID: "new-id", Title: "Creed", Director: "Ryan Coogler", Rating: 8.8})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	err = s.Add(&Movie{ID: "new-id", Title: "Creed again"})
	assert.ErrorIs(t, err, ErrMovieExists)
	assert.Equal(t, 4, s.Len())
}

func TestMovieStore_Delete(t *testing.T) {
	s := seedMovieStore()
	m, err := s.Delete("720d006c-3a57-4b6a-b18f-9b713b073f3c")
	require.NoError(t, err)
	assert.Equal(t, "The Good Dinosaur", m.Title)
	assert.Equal(t, 2, s.Len())

	_, err = s.Delete("720d006c-3a57-4b6a-b18f-9b713b073f3c")
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieStore_Snapshot(t *testing.T) {
	s := seedMovieStore()
	snap := s.Snapshot()
	require.Len(t, snap.Movies, 3)
	snap.Movies[0].Title = "tampered"

	fresh, _ := s.FindByID(snap.Movies[0].ID)
	assert.NotEqual(t, "tampered", fresh.Title)
}

func TestActorStore_ForMovie(t *testing.T) {
	s := NewActorStore()
	s.Replace([]*Actor{
		{ID: "a1", Firstname: "Matt", Lastname: "Damon", Films: []string{"a8034f44-aee4-44cf-b32c-74cf452aaaae"}},
		{ID: "a2", Firstname: "Jessica", Lastname: "Chastain", Films: []string{"a8034f44-aee4-44cf-b32c-74cf452aaaae", "other"}},
		{ID: "a3", Firstname: "Eddie", Lastname: "Redmayne", Films: []string{"96798c08-d19b-4986-a05d-7da856efb697"}},
	})

	cast := s.ForMovie("a8034f44-aee4-44cf-b32c-74cf452aaaae")
	require.Len(t, cast, 2)
	assert.Equal(t, "Damon", cast[0].Lastname)

	assert.Empty(t, s.ForMovie("unlisted"))
}

func TestScheduleStore_FindByDate(t *testing.T) {
	s := NewScheduleStore()
	s.Replace([]*Showtime{
		{Date: "20151130", Movies: []string{"movie-a", "movie-b"}},
		{Date: "20151201", Movies: []string{"movie-c"}},
	})

	st, ok := s.FindByDate("20151130")
	require.True(t, ok)
	assert.Equal(t, []string{"movie-a", "movie-b"}, st.Movies)

	_, ok = s.FindByDate("20160101")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestScheduleStore_AllReturnsCopies(t *testing.T) {
	s := NewScheduleStore()
	s.Replace([]*Showtime{{Date: "20151130", Movies: []string{"movie-a"}}})

	all := s.All()
	all[0].Movies[0] = "tampered"

	st, _ := s.FindByDate("20151130")
	assert.Equal(t, "movie-a", st.Movies[0])
}

func TestUserStore_UpdateMergesFields(t *testing.T) {
	s := NewUserStore()
	s.Replace([]*User{{ID: "chris_rivers", Name: "Chris Rivers", LastActive: 1360031010}})

	name := "Christopher Rivers"
	u, err := s.Update("chris_rivers", &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "Christopher Rivers", u.Name)
	assert.Equal(t, int64(1360031010), u.LastActive)

	la := int64(1448841600)
	u, err = s.Update("chris_rivers", nil, &la)
	require.NoError(t, err)
	assert.Equal(t, "Christopher Rivers", u.Name)
	assert.Equal(t, int64(1448841600), u.LastActive)
}

func TestUserStore_UpdateMissing(t *testing.T) {
	s := NewUserStore()
	name := "x"
	_, err := s.Update("missing", &name, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserStore_Delete(t *testing.T) {
	s := NewUserStore()
	s.Replace([]*User{{ID: "chris_rivers"}, {ID: "dwight_schrute"}})

	require.NoError(t, s.Delete("chris_rivers"))
	assert.Equal(t, 1, s.Len())
	_, ok := s.FindByID("chris_rivers")
	assert.False(t, ok)

	assert.ErrorIs(t, s.Delete("chris_rivers"), ErrUserNotFound)
}
