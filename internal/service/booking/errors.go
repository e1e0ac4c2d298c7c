package booking

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid booking request")
	ErrShowNotFound      = errors.New("show not found")
	ErrShowNotActive     = errors.New("show is not active")
	ErrSeatNotFound      = errors.New("seat does not belong to the show's screen")
	ErrSeatConflict      = errors.New("seat already booked")
	ErrInsufficientSeats = errors.New("not enough seats available")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrRateLimited       = errors.New("rate limited")
)
