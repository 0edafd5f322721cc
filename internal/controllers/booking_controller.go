package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"

	"moviebook/internal/models"
	"moviebook/internal/providers"
	"moviebook/internal/services"
)

const (
	cacheKeyAllBookings  = "bookings:all"
	cacheKeyUserBookings = "bookings:user:"
)

type BookingController struct {
	logger  providers.Logger
	service services.BookingServiceInterface
	cache   providers.CacheProviderInterface
}

func NewBookingController(logger providers.Logger, service services.BookingServiceInterface, cache providers.CacheProviderInterface) *BookingController {
	return &BookingController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func (bc *BookingController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := bc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	bc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (bc *BookingController) GetBookings(w http.ResponseWriter, r *http.Request) {
	bc.serveFromCacheOrCompute(w, cacheKeyAllBookings, func() (any, error) {
		return bc.service.GetBookings(), nil
	})
}

func (bc *BookingController) GetBookingsByUser(w http.ResponseWriter, r *http.Request) {
	userid := r.PathValue("userid")
	bc.serveFromCacheOrCompute(w, cacheKeyUserBookings+userid, func() (any, error) {
		return bc.service.GetBookingsByUser(userid)
	})
}

type bookingRequest struct {
	Date    string `json:"date" validate:"required"`
	MovieID string `json:"movieid" validate:"required"`
}

// AddBooking is the write endpoint: POST /bookings/{userid} with a
// {date, movieid} payload. The coordinator decides the outcome; this
// handler only maps it onto HTTP statuses.
func (bc *BookingController) AddBooking(w http.ResponseWriter, r *http.Request) {
	userid := r.PathValue("userid")

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if v := validate.Struct(&payload); !v.Validate() {
		writeError(w, http.StatusBadRequest, models.ErrInvalidInput.Error())
		return
	}

	err := bc.service.AddBooking(r.Context(), userid, payload.Date, payload.MovieID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, messageResponse{Message: "booking added successfully"})
	case errors.Is(err, models.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrMovieUnavailable):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrOracleUnreachable):
		writeError(w, http.StatusBadGateway, models.ErrOracleUnreachable.Error())
	case errors.Is(err, models.ErrPersistence):
		writeError(w, http.StatusInternalServerError, models.ErrPersistence.Error())
	default:
		bc.logger.Errorf(providers.TypeApp, "Unexpected booking error: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
