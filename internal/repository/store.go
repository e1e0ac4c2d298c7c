package repository

import (
	"context"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
)

// BookingTx is the set of reads and mutations available inside one atomic
// unit of the booking transaction manager. Implementations must guarantee
// that ShowForUpdate serializes concurrent units touching the same show,
// so the check-then-reserve sequence can never interleave.
type BookingTx interface {
	// ShowForUpdate reloads the show inside the unit and takes the
	// per-show lock. Returns ErrNotFound if the show does not exist.
	ShowForUpdate(ctx context.Context, showID int64) (*domain.Show, error)

	// SeatsOnScreen returns which of seatIDs actually belong to the screen.
	SeatsOnScreen(ctx context.Context, screenID int64, seatIDs []int64) ([]int64, error)

	// ConfirmedSeats returns which of seatIDs are currently held by a
	// Confirmed booking for the show. This is the authoritative conflict
	// check; the cached counter is only an early reject.
	ConfirmedSeats(ctx context.Context, showID int64, seatIDs []int64) ([]int64, error)

	InsertBooking(ctx context.Context, userID, showID, totalCents int64) (int64, error)
	InsertBookingSeats(ctx context.Context, bookingID int64, seatIDs []int64, priceCents int64) error

	// AdjustAvailableSeats applies delta to the show's denormalized counter,
	// guarded so it never goes negative. Returns ErrInsufficientSeats when
	// the guard rejects the update.
	AdjustAvailableSeats(ctx context.Context, showID int64, delta int) error

	BookingForUpdate(ctx context.Context, bookingID int64) (*domain.Booking, error)
	MarkBookingCancelled(ctx context.Context, bookingID int64) error
	BookedSeatCount(ctx context.Context, bookingID int64) (int, error)
}

// BookingStore is the persistence contract of the booking transaction
// manager. The postgres implementation backs production; an in-memory
// implementation backs tests.
type BookingStore interface {
	// InTx runs fn as one atomic unit: every mutation commits together or
	// none survive.
	InTx(ctx context.Context, fn func(ctx context.Context, tx BookingTx) error) error

	GetShow(ctx context.Context, showID int64) (*domain.Show, error)

	// SeatMap returns every seat on the show's screen with its derived
	// availability. Read-only, not serialized with writers.
	SeatMap(ctx context.Context, showID int64) ([]domain.SeatWithAvailability, error)

	GetBookingWithSeats(ctx context.Context, bookingID int64) (*domain.BookingWithSeats, error)
}
