package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
	"github.com/chaitanya-codes/MovieTix/internal/repository"
)

type BookingRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *BookingRepo) With(db DB) *BookingRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *BookingRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// GetWithSeats retrieves a booking together with its booking_seats rows.
//
// Returns:
//   - *domain.BookingWithSeats: the booking when found.
//   - error: repository.ErrNotFound if the booking is not found.
func (r *BookingRepo) GetWithSeats(ctx context.Context, bookingID int64) (*domain.BookingWithSeats, error) {
	const op = "postgres.BookingRepo.GetWithSeats"

	db := r.handle()

	var out domain.BookingWithSeats
	err := db.QueryRow(ctx,
		`SELECT booking_id, user_id, show_id, total_amount_cents, booking_status, booking_date
       	 FROM bookings WHERE booking_id = $1`,
		bookingID,
	).Scan(&out.ID, &out.UserID, &out.ShowID, &out.TotalCents, &out.Status, &out.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	rows, err := db.Query(ctx,
		`SELECT booking_id, seat_id, seat_price_cents
       	 FROM booking_seats
      	 WHERE booking_id = $1
      	 ORDER BY seat_id`,
		bookingID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	for rows.Next() {
		var bs domain.BookingSeat
		if err := rows.Scan(&bs.BookingID, &bs.SeatID, &bs.PriceCents); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out.Seats = append(out.Seats, bs)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &out, nil
}

// ListByUser lists a user's bookings, newest first, with movie/theater
// context and the number of seats in each booking.
func (r *BookingRepo) ListByUser(ctx context.Context, userID int64) ([]domain.BookingSummary, error) {
	const op = "postgres.BookingRepo.ListByUser"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT b.booking_id, b.total_amount_cents, b.booking_status, b.booking_date,
                m.title, t.theater_name, s.show_date, s.show_time::text,
                (SELECT COUNT(*) FROM booking_seats bs WHERE bs.booking_id = b.booking_id)
       	 FROM bookings b
       	 JOIN shows s ON s.show_id = b.show_id
      	 JOIN movies m ON m.movie_id = s.movie_id
      	 JOIN theaters t ON t.theater_id = s.theater_id
      	 WHERE b.user_id = $1
      	 ORDER BY b.booking_date DESC`,
		userID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.BookingSummary
	for rows.Next() {
		var s domain.BookingSummary
		if err := rows.Scan(
			&s.BookingID,
			&s.TotalCents,
			&s.Status,
			&s.CreatedAt,
			&s.MovieTitle,
			&s.TheaterName,
			&s.ShowDate,
			&s.ShowTime,
			&s.SeatsCount,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// bookingTx implements repository.BookingTx over a live transaction handle.
// Every method runs on the same connection, so locks taken by
// ShowForUpdate hold for the rest of the unit.
type bookingTx struct {
	db DB
}

func (t *bookingTx) ShowForUpdate(ctx context.Context, showID int64) (*domain.Show, error) {
	const op = "postgres.bookingTx.ShowForUpdate"

	var s domain.Show
	err := t.db.QueryRow(ctx,
		`SELECT show_id, movie_id, theater_id, screen_id, show_date, show_time::text,
                price_per_ticket_cents, available_seats, show_status
       	 FROM shows
      	 WHERE show_id = $1
      	 FOR UPDATE`,
		showID,
	).Scan(
		&s.ID, &s.MovieID, &s.TheaterID, &s.ScreenID, &s.Date, &s.Time,
		&s.PriceCents, &s.AvailableSeats, &s.Status,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

func (t *bookingTx) SeatsOnScreen(ctx context.Context, screenID int64, seatIDs []int64) ([]int64, error) {
	const op = "postgres.bookingTx.SeatsOnScreen"

	rows, err := t.db.Query(ctx,
		`SELECT seat_id FROM seats WHERE screen_id = $1 AND seat_id = ANY($2)`,
		screenID, seatIDs,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (t *bookingTx) ConfirmedSeats(ctx context.Context, showID int64, seatIDs []int64) ([]int64, error) {
	const op = "postgres.bookingTx.ConfirmedSeats"

	rows, err := t.db.Query(ctx,
		`SELECT bs.seat_id
       	 FROM booking_seats bs
       	 JOIN bookings b ON b.booking_id = bs.booking_id
      	 WHERE b.show_id = $1
        	AND b.booking_status = 'Confirmed'
        	AND bs.seat_id = ANY($2)`,
		showID, seatIDs,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (t *bookingTx) InsertBooking(ctx context.Context, userID, showID, totalCents int64) (int64, error) {
	const op = "postgres.bookingTx.InsertBooking"

	var id int64
	err := t.db.QueryRow(ctx,
		`INSERT INTO bookings(user_id, show_id, total_amount_cents, booking_status)
       	 VALUES ($1, $2, $3, 'Confirmed')
      	 RETURNING booking_id`,
		userID, showID, totalCents,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

func (t *bookingTx) InsertBookingSeats(ctx context.Context, bookingID int64, seatIDs []int64, priceCents int64) error {
	const op = "postgres.bookingTx.InsertBookingSeats"

	batch := &pgx.Batch{}
	for _, sid := range seatIDs {
		batch.Queue(
			`INSERT INTO booking_seats(booking_id, seat_id, seat_price_cents)
         	 VALUES ($1, $2, $3)`,
			bookingID, sid, priceCents,
		)
	}
	if err := t.db.SendBatch(ctx, batch).Close(); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func (t *bookingTx) AdjustAvailableSeats(ctx context.Context, showID int64, delta int) error {
	const op = "postgres.bookingTx.AdjustAvailableSeats"

	tag, err := t.db.Exec(ctx,
		`UPDATE shows
        	SET available_seats = available_seats + $2
      	 WHERE show_id = $1
        	AND available_seats + $2 >= 0`,
		showID, delta,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrInsufficientSeats)
	}

	return nil
}

func (t *bookingTx) BookingForUpdate(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	const op = "postgres.bookingTx.BookingForUpdate"

	var b domain.Booking
	err := t.db.QueryRow(ctx,
		`SELECT booking_id, user_id, show_id, total_amount_cents, booking_status, booking_date
       	 FROM bookings
      	 WHERE booking_id = $1
      	 FOR UPDATE`,
		bookingID,
	).Scan(&b.ID, &b.UserID, &b.ShowID, &b.TotalCents, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &b, nil
}

func (t *bookingTx) MarkBookingCancelled(ctx context.Context, bookingID int64) error {
	const op = "postgres.bookingTx.MarkBookingCancelled"

	tag, err := t.db.Exec(ctx,
		`UPDATE bookings SET booking_status = 'Cancelled' WHERE booking_id = $1`,
		bookingID,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

func (t *bookingTx) BookedSeatCount(ctx context.Context, bookingID int64) (int, error) {
	const op = "postgres.bookingTx.BookedSeatCount"

	var n int
	err := t.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM booking_seats WHERE booking_id = $1`,
		bookingID,
	).Scan(&n)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return n, nil
}
