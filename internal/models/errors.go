package models

import "errors"

var (
	// ErrInvalidInput is returned before any oracle call when a booking
	// request is missing its date or movie id.
	ErrInvalidInput = errors.New("missing 'date' or 'movieid' in request")

	// ErrMovieUnavailable means the oracle resolved the date but the movie
	// is not in its schedule for that date.
	ErrMovieUnavailable = errors.New("the movie is not available on the requested date")

	// ErrOracleUnreachable covers transport failures, non-success upstream
	// statuses and dates unknown to the showtime service. It is kept
	// distinct from ErrMovieUnavailable so callers can tell "not offered"
	// from "could not verify".
	ErrOracleUnreachable = errors.New("showtime service unreachable")

	// ErrPersistence means the ledger snapshot could not be written. The
	// in-memory state may be ahead of the on-disk state; callers must not
	// assume the booking was committed.
	ErrPersistence = errors.New("snapshot persistence failed")

	ErrUserNotFound  = errors.New("user ID not found")
	ErrDateNotFound  = errors.New("date not found")
	ErrMovieNotFound = errors.New("movie ID not found")
	ErrMovieExists   = errors.New("movie ID already exists")

	// ErrUpstreamUnavailable is returned by the user facade when a peer
	// service cannot be reached or answers with a server error.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
