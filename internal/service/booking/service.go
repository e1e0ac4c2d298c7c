// Package booking is the transaction manager for seat reservations: it is
// the only code path that writes bookings, booking_seats and the shows
// available_seats counter.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
	"github.com/chaitanya-codes/MovieTix/internal/repository"
	redisrepo "github.com/chaitanya-codes/MovieTix/internal/repository/redis"
	"github.com/chaitanya-codes/MovieTix/internal/uow"
)

type Config struct {
	SeatMapTTL time.Duration
}

type Service struct {
	store   repository.BookingStore
	cache   *redisrepo.Cache
	pubsub  *redisrepo.ShowsPubSub
	limiter *redisrepo.SlidingWindowLimiter
	uow     *uow.UoW
	cfg     Config
}

func New(
	store repository.BookingStore,
	cache *redisrepo.Cache,
	pubsub *redisrepo.ShowsPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	cfg Config,
) *Service {
	if cfg.SeatMapTTL <= 0 {
		cfg.SeatMapTTL = 15 * time.Second
	}

	return &Service{
		store:   store,
		cache:   cache,
		pubsub:  pubsub,
		limiter: limiter,
		uow:     uow.NewUoW(store),
		cfg:     cfg,
	}
}

// Book reserves seatIDs for the show on behalf of the user as one atomic
// unit. Either a booking with every requested seat exists afterwards, or
// nothing does.
//
// Parameters:
//   - ctx: request-scoped context.
//   - userID: ID of the user booking the seats.
//   - showID: ID of the show the seats are for.
//   - seatIDs: IDs of the seats to reserve.
//   - rlKey: rate-limit bucket key; empty disables limiting.
//
// Returns:
//   - *domain.Booking: the confirmed booking.
//   - error: booking.ErrSeatConflict if any seat is already held by a
//     confirmed booking for this show.
//   - error: booking.ErrInsufficientSeats if the show cannot seat the party.
func (s *Service) Book(
	ctx context.Context,
	userID, showID int64,
	seatIDs []int64,
	rlKey string,
) (*domain.Booking, error) {
	const op = "service.booking.Book"

	if len(seatIDs) == 0 {
		return nil, fmt.Errorf("%s: no seats selected: %w", op, ErrInvalidRequest)
	}

	seen := make(map[int64]bool, len(seatIDs))
	for _, id := range seatIDs {
		if id <= 0 || seen[id] {
			return nil, fmt.Errorf("%s: duplicate or invalid seat id %d: %w", op, id, ErrInvalidRequest)
		}
		seen[id] = true
	}

	if userID <= 0 {
		return nil, fmt.Errorf("%s: invalid user id: %w", op, ErrInvalidRequest)
	}

	if s.limiter != nil && rlKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, rlKey)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: retry in %s: %w", op, retry, ErrRateLimited)
		}
	}

	// Fast-path reject on the cached counter. Not authoritative: the
	// decisive check happens against the ledger inside the atomic unit.
	show, err := s.store.GetShow(ctx, showID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrShowNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if show.Status != domain.ShowActive {
		return nil, fmt.Errorf("%s:%w", op, ErrShowNotActive)
	}

	if show.AvailableSeats < len(seatIDs) {
		return nil, fmt.Errorf("%s:%w", op, ErrInsufficientSeats)
	}

	var booked *domain.Booking

	err = s.uow.Do(ctx, func(
		ctx context.Context,
		tx repository.BookingTx,
		after func(uow.AfterCommit),
	) error {
		b, err := s.bookCore(ctx, tx, userID, showID, seatIDs)
		if err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		booked = b

		after(func(ctx context.Context) {
			s.notifyShowChanged(ctx, showID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return booked, nil
}

// bookCore is the check-then-reserve sequence. It runs inside the atomic
// unit; tx.ShowForUpdate serializes it per show.
func (s *Service) bookCore(
	ctx context.Context,
	tx repository.BookingTx,
	userID, showID int64,
	seatIDs []int64,
) (*domain.Booking, error) {
	show, err := tx.ShowForUpdate(ctx, showID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrShowNotFound
		}

		return nil, err
	}

	if show.Status != domain.ShowActive {
		return nil, ErrShowNotActive
	}

	if show.AvailableSeats < len(seatIDs) {
		return nil, ErrInsufficientSeats
	}

	onScreen, err := tx.SeatsOnScreen(ctx, show.ScreenID, seatIDs)
	if err != nil {
		return nil, err
	}

	if len(onScreen) != len(seatIDs) {
		return nil, fmt.Errorf("unknown seats %v: %w", missingIDs(seatIDs, onScreen), ErrSeatNotFound)
	}

	// Authoritative conflict check against the ledger. The counter above
	// can be stale relative to a concurrent commit; this cannot.
	taken, err := tx.ConfirmedSeats(ctx, showID, seatIDs)
	if err != nil {
		return nil, err
	}

	if len(taken) > 0 {
		return nil, fmt.Errorf("seats %v: %w", taken, ErrSeatConflict)
	}

	totalCents := show.PriceCents * int64(len(seatIDs))

	bookingID, err := tx.InsertBooking(ctx, userID, showID, totalCents)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, fmt.Errorf("unknown user %d: %w", userID, ErrInvalidRequest)
		}

		return nil, err
	}

	if err := tx.InsertBookingSeats(ctx, bookingID, seatIDs, show.PriceCents); err != nil {
		return nil, err
	}

	if err := tx.AdjustAvailableSeats(ctx, showID, -len(seatIDs)); err != nil {
		if errors.Is(err, repository.ErrInsufficientSeats) {
			return nil, ErrInsufficientSeats
		}

		return nil, err
	}

	return &domain.Booking{
		ID:         bookingID,
		UserID:     userID,
		ShowID:     showID,
		TotalCents: totalCents,
		Status:     domain.BookingConfirmed,
	}, nil
}

// Cancel cancels a confirmed booking and restores the show's seat counter
// by the number of seats the booking held. Cancelling an already-cancelled
// booking is a no-op that returns the original refund and does not restore
// seats twice.
//
// Returns:
//   - int64: the refund amount in cents (the booking's stored total).
//   - error: booking.ErrBookingNotFound if the booking does not exist.
func (s *Service) Cancel(ctx context.Context, bookingID int64) (int64, error) {
	const op = "service.booking.Cancel"

	var refund int64

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx repository.BookingTx,
		after func(uow.AfterCommit),
	) error {
		b, err := tx.BookingForUpdate(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrBookingNotFound)
			}

			return fmt.Errorf("%s:%w", op, err)
		}

		refund = b.TotalCents

		if b.Status == domain.BookingCancelled {
			return nil
		}

		seats, err := tx.BookedSeatCount(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		if err := tx.MarkBookingCancelled(ctx, bookingID); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		if err := tx.AdjustAvailableSeats(ctx, b.ShowID, seats); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			s.notifyShowChanged(ctx, b.ShowID)
		})

		return nil
	})
	if err != nil {
		return 0, err
	}

	return refund, nil
}

// SeatMap returns every seat on the show's screen with its derived
// availability. The result is cached briefly; a seat may read Available
// for an instant after a concurrent booking lands, which is fine because
// the authoritative check runs inside the booking unit, not here.
func (s *Service) SeatMap(ctx context.Context, showID int64) ([]domain.SeatWithAvailability, error) {
	const op = "service.booking.SeatMap"

	if _, err := s.store.GetShow(ctx, showID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrShowNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if s.cache == nil {
		seats, err := s.store.SeatMap(ctx, showID)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		return seats, nil
	}

	seats, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyShowSeatMap(showID),
		s.cfg.SeatMapTTL,
		func(ctx context.Context) ([]domain.SeatWithAvailability, error) {
			return s.store.SeatMap(ctx, showID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return seats, nil
}

// GetBooking retrieves a booking together with its seats.
//
// Returns:
//   - error: booking.ErrBookingNotFound if the booking does not exist.
func (s *Service) GetBooking(ctx context.Context, bookingID int64) (*domain.BookingWithSeats, error) {
	const op = "service.booking.GetBooking"

	b, err := s.store.GetBookingWithSeats(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrBookingNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return b, nil
}

func (s *Service) notifyShowChanged(ctx context.Context, showID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateShow(ctx, showID)
	}
	if s.pubsub != nil {
		_ = s.pubsub.PublishShowChanged(ctx, showID)
	}
}

func missingIDs(want, have []int64) []int64 {
	got := make(map[int64]bool, len(have))
	for _, id := range have {
		got[id] = true
	}

	var out []int64
	for _, id := range want {
		if !got[id] {
			out = append(out, id)
		}
	}
	return out
}
