package models

// On-disk envelopes. Every store is persisted as a single document
// holding its full collection, rewritten in whole on each mutation.

type LedgerSnapshot struct {
	Bookings []*BookingRecord `json:"bookings"`
}

type ScheduleSnapshot struct {
	Schedule []*Showtime `json:"schedule"`
}

type MovieSnapshot struct {
	Movies []*Movie `json:"movies"`
}

type ActorSnapshot struct {
	Actors []*Actor `json:"actors"`
}

type UserSnapshot struct {
	Users []*User `json:"users"`
}
