package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"moviebook/internal/clients"
	"moviebook/internal/models"
	"moviebook/internal/providers"
	"moviebook/internal/services"
)

// UserController is the aggregating facade: it validates the user
// against the directory and then fans out to the booking and movie
// services.
type UserController struct {
	logger  providers.Logger
	service services.UserServiceInterface
	booking clients.BookingClientInterface
	movies  clients.MovieClientInterface
}

func NewUserController(logger providers.Logger, service services.UserServiceInterface, booking clients.BookingClientInterface, movies clients.MovieClientInterface) *UserController {
	return &UserController{
		logger:  logger,
		service: service,
		booking: booking,
		movies:  movies,
	}
}

// lookupUser resolves the user or writes the 404. Returns false when
// the response has been written.
func (uc *UserController) lookupUser(w http.ResponseWriter, userid string) bool {
	if _, err := uc.service.GetUser(userid); err != nil {
		writeError(w, http.StatusNotFound, models.ErrUserNotFound.Error())
		return false
	}
	return true
}

func (uc *UserController) GetReservations(w http.ResponseWriter, r *http.Request) {
	userid := r.PathValue("userid")
	if !uc.lookupUser(w, userid) {
		return
	}

	rec, err := uc.booking.BookingsByUser(r.Context(), userid)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, rec)
	case errors.Is(err, models.ErrUserNotFound):
		// Known user without any booking yet: an empty record, not a 404.
		writeJSON(w, http.StatusOK, &models.BookingRecord{UserID: userid, Dates: []*models.DateEntry{}})
	default:
		uc.logger.Errorf(providers.TypeApp, "Booking lookup for user %s failed: %s", userid, err)
		writeError(w, http.StatusBadGateway, models.ErrUpstreamUnavailable.Error())
	}
}

type userMoviesResponse struct {
	UserID string            `json:"userid"`
	Movies []json.RawMessage `json:"movies"`
}

func (uc *UserController) GetMovies(w http.ResponseWriter, r *http.Request) {
	userid := r.PathValue("userid")
	if !uc.lookupUser(w, userid) {
		return
	}

	rec, err := uc.booking.BookingsByUser(r.Context(), userid)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		uc.logger.Errorf(providers.TypeApp, "Booking lookup for user %s failed: %s", userid, err)
		writeError(w, http.StatusBadGateway, models.ErrUpstreamUnavailable.Error())
		return
	}

	details := make([]json.RawMessage, 0)
	if rec != nil {
		for _, entry := range rec.Dates {
			for _, movieID := range entry.Movies {
				movie, err := uc.movies.MovieWithID(r.Context(), movieID)
				if err != nil {
					uc.logger.Warnf(providers.TypeApp, "Movie %s could not be resolved: %s", movieID, err)
					continue
				}
				details = append(details, movie)
			}
		}
	}

	if len(details) == 0 {
		writeError(w, http.StatusNotFound, "no movies found")
		return
	}
	writeJSON(w, http.StatusOK, userMoviesResponse{UserID: userid, Movies: details})
}

// AddReservation checks the user exists and forwards the booking
// request; the booking service's verdict is relayed unchanged.
func (uc *UserController) AddReservation(w http.ResponseWriter, r *http.Request) {
	userid := r.PathValue("userid")
	if !uc.lookupUser(w, userid) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, body, err := uc.booking.AddBooking(r.Context(), userid, payload.Date, payload.MovieID)
	if err != nil {
		uc.logger.Errorf(providers.TypeApp, "Forwarding booking for user %s failed: %s", userid, err)
		writeError(w, http.StatusBadGateway, models.ErrUpstreamUnavailable.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (uc *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userid := r.PathValue("userid")

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var update services.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if update.Empty() {
		writeError(w, http.StatusBadRequest, "no data provided")
		return
	}

	user, err := uc.service.UpdateUser(userid, &update)
	if err != nil {
		writeError(w, http.StatusNotFound, models.ErrUserNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (uc *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userid := r.PathValue("userid")

	if err := uc.service.DeleteUser(userid); err != nil {
		writeError(w, http.StatusNotFound, models.ErrUserNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "user deleted"})
}
