package booking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
	"github.com/chaitanya-codes/MovieTix/internal/repository/memory"
	"github.com/chaitanya-codes/MovieTix/internal/service/booking"
)

const (
	testUserID  = int64(1)
	testShowID  = int64(1)
	testScreen  = int64(1)
	priceCents  = int64(1200)
	totalSeats  = 9
	testDateStr = "2026-09-01"
)

// newTestService seeds a user, one screen with a 3x3 seat grid (seat IDs
// 1..9, rows A..C) and one active show, and returns the service on top.
func newTestService(t *testing.T) (*booking.Service, *memory.Store) {
	t.Helper()

	store := memory.NewStore()

	store.AddUser(domain.User{
		ID:        testUserID,
		Username:  "alice",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Doe",
	})

	rows := []string{"A", "B", "C"}
	id := int64(1)
	for _, row := range rows {
		for n := 1; n <= 3; n++ {
			store.AddSeat(domain.Seat{
				ID:         id,
				ScreenID:   testScreen,
				RowLabel:   row,
				SeatNumber: n,
				SeatType:   "Standard",
			})
			id++
		}
	}

	date, err := time.Parse("2006-01-02", testDateStr)
	require.NoError(t, err)

	store.AddShow(domain.Show{
		ID:             testShowID,
		MovieID:        1,
		TheaterID:      1,
		ScreenID:       testScreen,
		Date:           date,
		Time:           "19:30:00",
		PriceCents:     priceCents,
		AvailableSeats: totalSeats,
		Status:         domain.ShowActive,
	})

	return booking.New(store, nil, nil, nil, booking.Config{}), store
}

func availableSeats(t *testing.T, store *memory.Store) int {
	t.Helper()

	show, err := store.GetShow(context.Background(), testShowID)
	require.NoError(t, err)
	return show.AvailableSeats
}

func TestBook_Succeeds(t *testing.T) {
	svc, store := newTestService(t)

	b, err := svc.Book(context.Background(), testUserID, testShowID, []int64{5, 6}, "")
	require.NoError(t, err)

	assert.Equal(t, testUserID, b.UserID)
	assert.Equal(t, testShowID, b.ShowID)
	assert.Equal(t, 2*priceCents, b.TotalCents)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, totalSeats-2, availableSeats(t, store))

	got, err := svc.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	require.Len(t, got.Seats, 2)
	assert.Equal(t, int64(5), got.Seats[0].SeatID)
	assert.Equal(t, int64(6), got.Seats[1].SeatID)
	assert.Equal(t, priceCents, got.Seats[0].PriceCents)
}

func TestBook_ValidationErrors(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name    string
		userID  int64
		showID  int64
		seatIDs []int64
		want    error
	}{
		{"empty seats", testUserID, testShowID, nil, booking.ErrInvalidRequest},
		{"duplicate seats", testUserID, testShowID, []int64{2, 2}, booking.ErrInvalidRequest},
		{"non-positive seat id", testUserID, testShowID, []int64{0}, booking.ErrInvalidRequest},
		{"invalid user id", 0, testShowID, []int64{1}, booking.ErrInvalidRequest},
		{"unknown show", testUserID, 999, []int64{1}, booking.ErrShowNotFound},
		{"unknown seat", testUserID, testShowID, []int64{42}, booking.ErrSeatNotFound},
		{"party larger than availability", testUserID, testShowID, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, booking.ErrInsufficientSeats},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Book(context.Background(), tc.userID, tc.showID, tc.seatIDs, "")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBook_UnknownUser(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.Book(context.Background(), 77, testShowID, []int64{1}, "")
	assert.ErrorIs(t, err, booking.ErrInvalidRequest)

	// Failed unit must leave the counter untouched.
	assert.Equal(t, totalSeats, availableSeats(t, store))
}

func TestBook_SeatConflict(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.Book(context.Background(), testUserID, testShowID, []int64{4, 5}, "")
	require.NoError(t, err)

	// Overlapping request loses, even though seats remain elsewhere.
	_, err = svc.Book(context.Background(), testUserID, testShowID, []int64{5, 6}, "")
	assert.ErrorIs(t, err, booking.ErrSeatConflict)

	// Losing request must not touch bookings or the counter.
	assert.Equal(t, totalSeats-2, availableSeats(t, store))

	seats, err := svc.SeatMap(context.Background(), testShowID)
	require.NoError(t, err)
	for _, s := range seats {
		if s.ID == 6 {
			assert.Equal(t, domain.SeatAvailable, s.Availability)
		}
	}
}

func TestBook_CancelledShow(t *testing.T) {
	svc, store := newTestService(t)

	show, err := store.GetShow(context.Background(), testShowID)
	require.NoError(t, err)
	show.Status = domain.ShowCancelled
	store.AddShow(*show)

	_, err = svc.Book(context.Background(), testUserID, testShowID, []int64{1}, "")
	assert.ErrorIs(t, err, booking.ErrShowNotActive)
}

func TestBook_ConcurrentOverlap(t *testing.T) {
	svc, store := newTestService(t)

	const workers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	// Every worker wants seat 7; exactly one may get it.
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := svc.Book(context.Background(), testUserID, testShowID, []int64{7}, "")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, booking.ErrSeatConflict):
				conflicts++
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
	assert.Equal(t, totalSeats-1, availableSeats(t, store))

	seats, err := svc.SeatMap(context.Background(), testShowID)
	require.NoError(t, err)
	for _, s := range seats {
		if s.ID == 7 {
			assert.Equal(t, domain.SeatBooked, s.Availability)
		}
	}
}

func TestCancel_RestoresSeatsOnce(t *testing.T) {
	svc, store := newTestService(t)

	b, err := svc.Book(context.Background(), testUserID, testShowID, []int64{1, 2, 3}, "")
	require.NoError(t, err)
	require.Equal(t, totalSeats-3, availableSeats(t, store))

	refund, err := svc.Cancel(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3*priceCents, refund)
	assert.Equal(t, totalSeats, availableSeats(t, store))

	// Second cancel is a no-op with the same refund.
	refund, err = svc.Cancel(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3*priceCents, refund)
	assert.Equal(t, totalSeats, availableSeats(t, store))

	got, err := svc.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)
}

func TestCancel_FreesSeatsForRebooking(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Book(context.Background(), testUserID, testShowID, []int64{8}, "")
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), first.ID)
	require.NoError(t, err)

	// The seat is bookable again after cancellation.
	second, err := svc.Book(context.Background(), testUserID, testShowID, []int64{8}, "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCancel_UnknownBooking(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestSeatMap_TracksBookings(t *testing.T) {
	svc, _ := newTestService(t)

	seats, err := svc.SeatMap(context.Background(), testShowID)
	require.NoError(t, err)
	require.Len(t, seats, totalSeats)
	for _, s := range seats {
		assert.Equal(t, domain.SeatAvailable, s.Availability)
	}

	b, err := svc.Book(context.Background(), testUserID, testShowID, []int64{2, 9}, "")
	require.NoError(t, err)

	seats, err = svc.SeatMap(context.Background(), testShowID)
	require.NoError(t, err)

	bookedIDs := map[int64]bool{2: true, 9: true}
	for _, s := range seats {
		if bookedIDs[s.ID] {
			assert.Equal(t, domain.SeatBooked, s.Availability)
		} else {
			assert.Equal(t, domain.SeatAvailable, s.Availability)
		}
	}

	// Cancelled bookings release their seats in the map.
	_, err = svc.Cancel(context.Background(), b.ID)
	require.NoError(t, err)

	seats, err = svc.SeatMap(context.Background(), testShowID)
	require.NoError(t, err)
	for _, s := range seats {
		assert.Equal(t, domain.SeatAvailable, s.Availability)
	}
}

func TestSeatMap_UnknownShow(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SeatMap(context.Background(), 999)
	assert.ErrorIs(t, err, booking.ErrShowNotFound)
}
