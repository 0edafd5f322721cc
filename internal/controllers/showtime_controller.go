package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"moviebook/internal/models"
	"moviebook/internal/providers"
	"moviebook/internal/services"
)

type ShowtimeController struct {
	logger  providers.Logger
	service services.ShowtimeServiceInterface
	cache   providers.CacheProviderInterface
}

func NewShowtimeController(logger providers.Logger, service services.ShowtimeServiceInterface, cache providers.CacheProviderInterface) *ShowtimeController {
	return &ShowtimeController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func (sc *ShowtimeController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "schedule:all"
	if data, ok := sc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	gson, err := json.Marshal(sc.service.GetSchedule())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	sc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (sc *ShowtimeController) GetByDate(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	st, err := sc.service.GetByDate(date)
	if err != nil {
		if errors.Is(err, models.ErrDateNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
