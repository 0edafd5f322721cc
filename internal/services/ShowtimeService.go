package services

import (
	"moviebook/internal/models"
)

type ShowtimeServiceInterface interface {
	GetSchedule() []*models.Showtime
	GetByDate(date string) (*models.Showtime, error)
	GetRecordCount() int
}

// ShowtimeService serves schedule lookups over the in-memory store.
type ShowtimeService struct {
	schedule *models.ScheduleStore
}

func NewShowtimeService(schedule *models.ScheduleStore) ShowtimeServiceInterface {
	return &ShowtimeService{schedule: schedule}
}

func (ss *ShowtimeService) GetSchedule() []*models.Showtime {
	return ss.schedule.All()
}

func (ss *ShowtimeService) GetByDate(date string) (*models.Showtime, error) {
	st, ok := ss.schedule.FindByDate(date)
	if !ok {
		return nil, models.ErrDateNotFound
	}
	return st, nil
}

func (ss *ShowtimeService) GetRecordCount() int {
	return ss.schedule.Len()
}
