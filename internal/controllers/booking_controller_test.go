package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviebook/internal/models"
	"moviebook/internal/testutil"
)

func newBookingController(svc *testutil.MockBookingService) (*BookingController, *testutil.MockCache) {
	cache := testutil.NewMockCache()
	return NewBookingController(&testutil.MockLogger{}, svc, cache), cache
}

func getBookingsByUser(bc *BookingController, userid string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/bookings/"+userid, nil)
	req.SetPathValue("userid", userid)
	w := httptest.NewRecorder()
	bc.GetBookingsByUser(w, req)
	return w
}

func postBooking(bc *BookingController, userid, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/bookings/"+userid, strings.NewReader(body))
	req.SetPathValue("userid", userid)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	bc.AddBooking(w, req)
	return w
}

func TestBookingController_GetBookings(t *testing.T) {
	svc := &testutil.MockBookingService{
		AllData: []*models.BookingRecord{
			{UserID: "chris_rivers", Dates: []*models.DateEntry{{Date: "20151201", Movies: []string{"movie-a"}}}},
		},
	}
	bc, cache := newBookingController(svc)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	w := httptest.NewRecorder()
	bc.GetBookings(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got []*models.BookingRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "chris_rivers", got[0].UserID)

	// Second call is served from cache.
	_, ok := cache.Get("bookings:all")
	assert.True(t, ok)
}

func TestBookingController_GetBookings_CacheHit(t *testing.T) {
	bc, cache := newBookingController(&testutil.MockBookingService{})
	cache.Set("bookings:all", []byte(`[{"userid":"cached"}]`))

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	w := httptest.NewRecorder()
	bc.GetBookings(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cached")
}

func TestBookingController_GetBookingsByUser(t *testing.T) {
	svc := &testutil.MockBookingService{
		UserData: map[string]*models.BookingRecord{
			"chris_rivers": {UserID: "chris_rivers", Dates: []*models.DateEntry{{Date: "20151201", Movies: []string{"movie-a"}}}},
		},
	}
	bc, _ := newBookingController(svc)

	w := getBookingsByUser(bc, "chris_rivers")
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.BookingRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "chris_rivers", got.UserID)
}

func TestBookingController_GetBookingsByUser_NotFound(t *testing.T) {
	bc, _ := newBookingController(&testutil.MockBookingService{})

	w := getBookingsByUser(bc, "nobody")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestBookingController_AddBooking_Success(t *testing.T) {
	svc := &testutil.MockBookingService{}
	bc, _ := newBookingController(svc)

	w := postBooking(bc, "chris_rivers", `{"date":"20151201","movieid":"movie-a"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "booking added successfully")

	require.Len(t, svc.AddCalls, 1)
	assert.Equal(t, "chris_rivers", svc.AddCalls[0].UserID)
	assert.Equal(t, "20151201", svc.AddCalls[0].Date)
	assert.Equal(t, "movie-a", svc.AddCalls[0].MovieID)
}

func TestBookingController_AddBooking_MalformedBody(t *testing.T) {
	svc := &testutil.MockBookingService{}
	bc, _ := newBookingController(svc)

	w := postBooking(bc, "chris_rivers", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.AddCalls)
}

func TestBookingController_AddBooking_MissingFields(t *testing.T) {
	svc := &testutil.MockBookingService{}
	bc, _ := newBookingController(svc)

	for _, body := range []string{`{}`, `{"date":"20151201"}`, `{"movieid":"movie-a"}`} {
		w := postBooking(bc, "chris_rivers", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
	assert.Empty(t, svc.AddCalls)
}

func TestBookingController_AddBooking_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{models.ErrMovieUnavailable, http.StatusBadRequest},
		{fmt.Errorf("%w: connection refused", models.ErrOracleUnreachable), http.StatusBadGateway},
		{fmt.Errorf("%w: disk full", models.ErrPersistence), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		bc, _ := newBookingController(&testutil.MockBookingService{AddErr: tc.err})
		w := postBooking(bc, "chris_rivers", `{"date":"20151201","movieid":"movie-a"}`)
		assert.Equal(t, tc.status, w.Code, "error %v", tc.err)
	}
}
