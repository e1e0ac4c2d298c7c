// Package memory implements repository.BookingStore on plain maps with a
// single mutex standing in for the database's per-show locking. It exists
// so the booking transaction manager can be exercised without a live
// Postgres, including under concurrency.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
	"github.com/chaitanya-codes/MovieTix/internal/repository"
)

type Store struct {
	mu sync.Mutex

	users map[int64]domain.User
	seats map[int64]domain.Seat
	// screenSeats keeps seat IDs per screen in seeded order.
	screenSeats map[int64][]int64

	shows        map[int64]domain.Show
	bookings     map[int64]domain.Booking
	bookingSeats map[int64][]domain.BookingSeat

	nextUserID    int64
	nextBookingID int64
}

func NewStore() *Store {
	return &Store{
		users:         make(map[int64]domain.User),
		seats:         make(map[int64]domain.Seat),
		screenSeats:   make(map[int64][]int64),
		shows:         make(map[int64]domain.Show),
		bookings:      make(map[int64]domain.Booking),
		bookingSeats:  make(map[int64][]domain.BookingSeat),
		nextUserID:    1,
		nextBookingID: 1,
	}
}

// --- seeding helpers ---

func (s *Store) AddUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == 0 {
		u.ID = s.nextUserID
	}
	if u.ID >= s.nextUserID {
		s.nextUserID = u.ID + 1
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.users[u.ID] = u
	return u
}

func (s *Store) AddSeat(seat domain.Seat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seats[seat.ID] = seat
	s.screenSeats[seat.ScreenID] = append(s.screenSeats[seat.ScreenID], seat.ID)
}

func (s *Store) AddShow(show domain.Show) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shows[show.ID] = show
}

// --- repository.BookingStore ---

// InTx serializes units with the store mutex and rolls the mutable state
// back when fn fails, so no partial booking ever survives.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx repository.BookingTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()

	if err := fn(ctx, &memTx{store: s}); err != nil {
		s.restore(snap)
		return err
	}

	return nil
}

func (s *Store) GetShow(ctx context.Context, showID int64) (*domain.Show, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	show, ok := s.shows[showID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &show, nil
}

func (s *Store) SeatMap(ctx context.Context, showID int64) ([]domain.SeatWithAvailability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	show, ok := s.shows[showID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	booked := s.confirmedSeatSet(show.ID)

	ids := append([]int64(nil), s.screenSeats[show.ScreenID]...)
	sort.Slice(ids, func(i, j int) bool {
		a, b := s.seats[ids[i]], s.seats[ids[j]]
		if a.RowLabel != b.RowLabel {
			return a.RowLabel < b.RowLabel
		}
		return a.SeatNumber < b.SeatNumber
	})

	out := make([]domain.SeatWithAvailability, 0, len(ids))
	for _, id := range ids {
		sa := domain.SeatWithAvailability{Seat: s.seats[id], Availability: domain.SeatAvailable}
		if booked[id] {
			sa.Availability = domain.SeatBooked
		}
		out = append(out, sa)
	}

	return out, nil
}

func (s *Store) GetBookingWithSeats(ctx context.Context, bookingID int64) (*domain.BookingWithSeats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	out := domain.BookingWithSeats{Booking: b}
	out.Seats = append(out.Seats, s.bookingSeats[bookingID]...)
	sort.Slice(out.Seats, func(i, j int) bool { return out.Seats[i].SeatID < out.Seats[j].SeatID })

	return &out, nil
}

// --- auth.UserStore ---

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return repository.ErrConflict
		}
	}

	u.ID = s.nextUserID
	s.nextUserID++
	u.CreatedAt = time.Now()
	s.users[u.ID] = *u

	return nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}

	return nil, repository.ErrNotFound
}

// --- internals ---

type storeSnapshot struct {
	shows         map[int64]domain.Show
	bookings      map[int64]domain.Booking
	bookingSeats  map[int64][]domain.BookingSeat
	nextBookingID int64
}

func (s *Store) snapshot() storeSnapshot {
	snap := storeSnapshot{
		shows:         make(map[int64]domain.Show, len(s.shows)),
		bookings:      make(map[int64]domain.Booking, len(s.bookings)),
		bookingSeats:  make(map[int64][]domain.BookingSeat, len(s.bookingSeats)),
		nextBookingID: s.nextBookingID,
	}
	for id, v := range s.shows {
		snap.shows[id] = v
	}
	for id, v := range s.bookings {
		snap.bookings[id] = v
	}
	for id, v := range s.bookingSeats {
		snap.bookingSeats[id] = append([]domain.BookingSeat(nil), v...)
	}
	return snap
}

func (s *Store) restore(snap storeSnapshot) {
	s.shows = snap.shows
	s.bookings = snap.bookings
	s.bookingSeats = snap.bookingSeats
	s.nextBookingID = snap.nextBookingID
}

func (s *Store) confirmedSeatSet(showID int64) map[int64]bool {
	booked := make(map[int64]bool)
	for _, b := range s.bookings {
		if b.ShowID != showID || b.Status != domain.BookingConfirmed {
			continue
		}
		for _, bs := range s.bookingSeats[b.ID] {
			booked[bs.SeatID] = true
		}
	}
	return booked
}

// memTx operates on the store while InTx holds the mutex.
type memTx struct {
	store *Store
}

func (t *memTx) ShowForUpdate(ctx context.Context, showID int64) (*domain.Show, error) {
	show, ok := t.store.shows[showID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &show, nil
}

func (t *memTx) SeatsOnScreen(ctx context.Context, screenID int64, seatIDs []int64) ([]int64, error) {
	var out []int64
	for _, id := range seatIDs {
		seat, ok := t.store.seats[id]
		if ok && seat.ScreenID == screenID {
			out = append(out, id)
		}
	}
	return out, nil
}

func (t *memTx) ConfirmedSeats(ctx context.Context, showID int64, seatIDs []int64) ([]int64, error) {
	booked := t.store.confirmedSeatSet(showID)

	var out []int64
	for _, id := range seatIDs {
		if booked[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (t *memTx) InsertBooking(ctx context.Context, userID, showID, totalCents int64) (int64, error) {
	if _, ok := t.store.users[userID]; !ok {
		return 0, fmt.Errorf("user %d: %w", userID, repository.ErrForeignKey)
	}
	if _, ok := t.store.shows[showID]; !ok {
		return 0, fmt.Errorf("show %d: %w", showID, repository.ErrForeignKey)
	}

	id := t.store.nextBookingID
	t.store.nextBookingID++

	t.store.bookings[id] = domain.Booking{
		ID:         id,
		UserID:     userID,
		ShowID:     showID,
		TotalCents: totalCents,
		Status:     domain.BookingConfirmed,
		CreatedAt:  time.Now(),
	}

	return id, nil
}

func (t *memTx) InsertBookingSeats(ctx context.Context, bookingID int64, seatIDs []int64, priceCents int64) error {
	if _, ok := t.store.bookings[bookingID]; !ok {
		return repository.ErrForeignKey
	}

	for _, sid := range seatIDs {
		t.store.bookingSeats[bookingID] = append(t.store.bookingSeats[bookingID], domain.BookingSeat{
			BookingID:  bookingID,
			SeatID:     sid,
			PriceCents: priceCents,
		})
	}

	return nil
}

func (t *memTx) AdjustAvailableSeats(ctx context.Context, showID int64, delta int) error {
	show, ok := t.store.shows[showID]
	if !ok {
		return repository.ErrNotFound
	}

	if show.AvailableSeats+delta < 0 {
		return repository.ErrInsufficientSeats
	}

	show.AvailableSeats += delta
	t.store.shows[showID] = show

	return nil
}

func (t *memTx) BookingForUpdate(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, ok := t.store.bookings[bookingID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (t *memTx) MarkBookingCancelled(ctx context.Context, bookingID int64) error {
	b, ok := t.store.bookings[bookingID]
	if !ok {
		return repository.ErrNotFound
	}

	b.Status = domain.BookingCancelled
	t.store.bookings[bookingID] = b

	return nil
}

func (t *memTx) BookedSeatCount(ctx context.Context, bookingID int64) (int, error) {
	return len(t.store.bookingSeats[bookingID]), nil
}
