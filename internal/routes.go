package internal

import (
	"net/http"

	"moviebook/internal/controllers"
	"moviebook/internal/providers"
)

func InitBookingRoutes(bookingController *controllers.BookingController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/bookings", http.HandlerFunc(bookingController.GetBookings))
	routers.Get("/bookings/{userid}", http.HandlerFunc(bookingController.GetBookingsByUser))
	routers.Post("/bookings/{userid}", http.HandlerFunc(bookingController.AddBooking))
	return routers
}

func InitShowtimeRoutes(showtimeController *controllers.ShowtimeController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/showtimes", http.HandlerFunc(showtimeController.GetSchedule))
	routers.Get("/showmovies/{date}", http.HandlerFunc(showtimeController.GetByDate))
	return routers
}

func InitMovieRoutes(movieController *controllers.MovieController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/graphql", http.HandlerFunc(movieController.GraphQL))
	return routers
}

func InitUserRoutes(userController *controllers.UserController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/users/{userid}/reservations", http.HandlerFunc(userController.GetReservations))
	routers.Post("/users/{userid}/reservations", http.HandlerFunc(userController.AddReservation))
	routers.Get("/users/{userid}/movies", http.HandlerFunc(userController.GetMovies))
	routers.Put("/users/{userid}", http.HandlerFunc(userController.UpdateUser))
	routers.Delete("/users/{userid}", http.HandlerFunc(userController.DeleteUser))
	return routers
}
