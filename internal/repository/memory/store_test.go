package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
	"github.com/chaitanya-codes/MovieTix/internal/repository"
)

func seededStore() *Store {
	s := NewStore()

	s.AddUser(domain.User{ID: 1, Username: "bob", Email: "bob@example.com"})
	s.AddSeat(domain.Seat{ID: 1, ScreenID: 1, RowLabel: "A", SeatNumber: 1})
	s.AddSeat(domain.Seat{ID: 2, ScreenID: 1, RowLabel: "A", SeatNumber: 2})
	s.AddShow(domain.Show{
		ID:             1,
		ScreenID:       1,
		Date:           time.Now(),
		Time:           "18:00:00",
		PriceCents:     1000,
		AvailableSeats: 2,
		Status:         domain.ShowActive,
	})

	return s
}

func TestInTx_RollsBackOnError(t *testing.T) {
	s := seededStore()
	boom := errors.New("boom")

	err := s.InTx(context.Background(), func(ctx context.Context, tx repository.BookingTx) error {
		id, err := tx.InsertBooking(ctx, 1, 1, 2000)
		require.NoError(t, err)

		require.NoError(t, tx.InsertBookingSeats(ctx, id, []int64{1, 2}, 1000))
		require.NoError(t, tx.AdjustAvailableSeats(ctx, 1, -2))

		return boom
	})
	require.ErrorIs(t, err, boom)

	// Nothing from the failed unit may be visible.
	show, err := s.GetShow(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, show.AvailableSeats)

	_, err = s.GetBookingWithSeats(context.Background(), 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInTx_CommitsOnSuccess(t *testing.T) {
	s := seededStore()

	var bookingID int64
	err := s.InTx(context.Background(), func(ctx context.Context, tx repository.BookingTx) error {
		id, err := tx.InsertBooking(ctx, 1, 1, 1000)
		if err != nil {
			return err
		}
		bookingID = id

		if err := tx.InsertBookingSeats(ctx, id, []int64{1}, 1000); err != nil {
			return err
		}
		return tx.AdjustAvailableSeats(ctx, 1, -1)
	})
	require.NoError(t, err)

	show, err := s.GetShow(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, show.AvailableSeats)

	b, err := s.GetBookingWithSeats(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Len(t, b.Seats, 1)
}

func TestAdjustAvailableSeats_NeverNegative(t *testing.T) {
	s := seededStore()

	err := s.InTx(context.Background(), func(ctx context.Context, tx repository.BookingTx) error {
		return tx.AdjustAvailableSeats(ctx, 1, -3)
	})
	assert.ErrorIs(t, err, repository.ErrInsufficientSeats)

	show, err := s.GetShow(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, show.AvailableSeats)
}

func TestCreateUser_Conflict(t *testing.T) {
	s := seededStore()

	err := s.CreateUser(context.Background(), &domain.User{Username: "bob", Email: "other@example.com"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	u := &domain.User{Username: "carol", Email: "carol@example.com"}
	require.NoError(t, s.CreateUser(context.Background(), u))
	assert.NotZero(t, u.ID)

	got, err := s.UserByUsername(context.Background(), "carol")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}
