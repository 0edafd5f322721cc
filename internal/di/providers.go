package di

import (
	"moviebook/internal/controllers"
	"moviebook/internal/services"
)

// Record-count adapters for the health endpoint; wire needs a concrete
// provider per service since RecordCounter is satisfied by all of them.

func provideBookingCounter(svc services.BookingServiceInterface) controllers.RecordCounter {
	return svc
}

func provideShowtimeCounter(svc services.ShowtimeServiceInterface) controllers.RecordCounter {
	return svc
}

func provideMovieCounter(svc services.MovieServiceInterface) controllers.RecordCounter {
	return svc
}

func provideUserCounter(svc services.UserServiceInterface) controllers.RecordCounter {
	return svc
}
