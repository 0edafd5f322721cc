package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviebook/internal/models"
	"moviebook/internal/services"
	"moviebook/internal/testutil"
)

func newShowtimeController(schedule []*models.Showtime) (*ShowtimeController, *testutil.MockCache) {
	store := models.NewScheduleStore()
	store.Replace(schedule)
	cache := testutil.NewMockCache()
	return NewShowtimeController(&testutil.MockLogger{}, services.NewShowtimeService(store), cache), cache
}

func TestShowtimeController_GetSchedule(t *testing.T) {
	sc, cache := newShowtimeController([]*models.Showtime{
		{Date: "20151130", Movies: []string{"movie-a", "movie-b"}},
		{Date: "20151201", Movies: []string{"movie-c"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/showtimes", nil)
	w := httptest.NewRecorder()
	sc.GetSchedule(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []*models.Showtime
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)

	_, ok := cache.Get("schedule:all")
	assert.True(t, ok)
}

func TestShowtimeController_GetByDate(t *testing.T) {
	sc, _ := newShowtimeController([]*models.Showtime{
		{Date: "20151130", Movies: []string{"movie-a"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/showmovies/20151130", nil)
	req.SetPathValue("date", "20151130")
	w := httptest.NewRecorder()
	sc.GetByDate(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.Showtime
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"movie-a"}, got.Movies)
}

func TestShowtimeController_GetByDate_NotFound(t *testing.T) {
	sc, _ := newShowtimeController(nil)

	req := httptest.NewRequest(http.MethodGet, "/showmovies/20991231", nil)
	req.SetPathValue("date", "20991231")
	w := httptest.NewRecorder()
	sc.GetByDate(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
