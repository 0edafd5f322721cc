package models

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerStore_ApplyCreatesRecord(t *testing.T) {
	s := NewLedgerStore()
	s.Apply("chris_rivers", "20151201", "267eedb8-0f5d-42d5-8f43-72426b9fb3e6")

	rec, ok := s.FindByUser("chris_rivers")
	require.True(t, ok)
	require.Len(t, rec.Dates, 1)
	assert.Equal(t, "20151201", rec.Dates[0].Date)
	assert.Equal(t, []string{"267eedb8-0f5d-42d5-8f43-72426b9fb3e6"}, rec.Dates[0].Movies)
	assert.Equal(t, 1, s.Len())
}

func TestLedgerStore_ApplySameDateAccumulates(t *testing.T) {
	s := NewLedgerStore()
	s.Apply("chris_rivers", "20151201", "movie-a")
	s.Apply("chris_rivers", "20151201", "movie-b")

	rec, ok := s.FindByUser("chris_rivers")
	require.True(t, ok)
	require.Len(t, rec.Dates, 1)
	assert.Equal(t, []string{"movie-a", "movie-b"}, rec.Dates[0].Movies)
	assert.Equal(t, 1, s.Len())
}

func TestLedgerStore_ApplyNewDateAppendsEntry(t *testing.T) {
	s := NewLedgerStore()
	s.Apply("chris_rivers", "20151201", "movie-a")
	s.Apply("chris_rivers", "20151202", "movie-b")

	rec, _ := s.FindByUser("chris_rivers")
	require.Len(t, rec.Dates, 2)
	assert.Equal(t, "20151201", rec.Dates[0].Date)
	assert.Equal(t, "20151202", rec.Dates[1].Date)
}

func TestLedgerStore_ApplyDuplicateMovieKept(t *testing.T) {
	s := NewLedgerStore()
	s.Apply("chris_rivers", "20151201", "movie-a")
	s.Apply("chris_rivers", "20151201", "movie-a")

	rec, _ := s.FindByUser("chris_rivers")
	require.Len(t, rec.Dates, 1)
	assert.Equal(t, []string{"movie-a", "movie-a"}, rec.Dates[0].Movies)
}

func TestLedgerStore_FindByUserMissing(t *testing.T) {
	s := NewLedgerStore()
	rec, ok := s.FindByUser("nobody")
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestLedgerStore_AllReturnsDeepCopies(t *testing.T) {
	s := NewLedgerStore()
	s.Apply("chris_rivers", "20151201", "movie-a")

	all := s.All()
	require.Len(t, all, 1)
	all[0].UserID = "tampered"
	all[0].Dates[0].Movies[0] = "tampered"

	rec, _ := s.FindByUser("chris_rivers")
	assert.Equal(t, "chris_rivers", rec.UserID)
	assert.Equal(t, "movie-a", rec.Dates[0].Movies[0])
}

func TestLedgerStore_FindByUserReturnsCopy(t *testing.T) {
	s := NewLedgerStore()
	s.Apply("chris_rivers", "20151201", "movie-a")

	rec, _ := s.FindByUser("chris_rivers")
	rec.Dates[0].Movies = append(rec.Dates[0].Movies, "injected")

	fresh, _ := s.FindByUser("chris_rivers")
	assert.Equal(t, []string{"movie-a"}, fresh.Dates[0].Movies)
}

func TestLedgerStore_ReplaceInstallsSnapshot(t *testing.T) {
	s := NewLedgerStore()
	s.Apply("old_user", "20151201", "movie-a")

	s.Replace([]*BookingRecord{
		{UserID: "dwight_schrute", Dates: []*DateEntry{{Date: "20151202", Movies: []string{"movie-b"}}}},
	})

	assert.Equal(t, 1, s.Len())
	_, ok := s.FindByUser("old_user")
	assert.False(t, ok)
	rec, ok := s.FindByUser("dwight_schrute")
	require.True(t, ok)
	assert.Equal(t, "20151202", rec.Dates[0].Date)
}

func TestLedgerStore_ReplaceNil(t *testing.T) {
	s := NewLedgerStore()
	s.Replace(nil)
	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.All())
}

func TestLedgerStore_Snapshot(t *testing.T) {
	s := NewLedgerStore()
	s.Apply("chris_rivers", "20151201", "movie-a")

	snap := s.Snapshot()
	require.Len(t, snap.Bookings, 1)
	snap.Bookings[0].UserID = "tampered"

	rec, ok := s.FindByUser("chris_rivers")
	require.True(t, ok)
	assert.Equal(t, "chris_rivers", rec.UserID)
}

func TestLedgerStore_ConcurrentApply(t *testing.T) {
	s := NewLedgerStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Apply("chris_rivers", "20151201", fmt.Sprintf("movie-%d", n))
		}(i)
	}
	wg.Wait()

	rec, ok := s.FindByUser("chris_rivers")
	require.True(t, ok)
	require.Len(t, rec.Dates, 1)
	assert.Len(t, rec.Dates[0].Movies, 50)
	assert.Equal(t, 1, s.Len())
}
