package postgres

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
)

type ShowRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ShowRepo) With(db DB) *ShowRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ShowRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// ShowFilter narrows ListShows. Zero values mean "no filter".
type ShowFilter struct {
	MovieID   int64
	TheaterID int64
	Date      *time.Time
}

// Get retrieves a show by its ID.
//
// Returns:
//   - *domain.Show: the show when found.
//   - error: repository.ErrNotFound if the show is not found.
func (r *ShowRepo) Get(ctx context.Context, id int64) (*domain.Show, error) {
	const op = "postgres.ShowRepo.Get"

	db := r.handle()

	var s domain.Show
	err := db.QueryRow(ctx,
		`SELECT show_id, movie_id, theater_id, screen_id, show_date, show_time::text,
                price_per_ticket_cents, available_seats, show_status
       	 FROM shows WHERE show_id = $1`,
		id,
	).Scan(
		&s.ID, &s.MovieID, &s.TheaterID, &s.ScreenID, &s.Date, &s.Time,
		&s.PriceCents, &s.AvailableSeats, &s.Status,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

// List lists active shows joined with movie and theater attributes,
// optionally filtered by movie, theater and date, ordered by date and time.
func (r *ShowRepo) List(ctx context.Context, f ShowFilter) ([]domain.ShowListing, error) {
	const op = "postgres.ShowRepo.List"

	db := r.handle()

	query := `SELECT s.show_id, s.movie_id, s.theater_id, s.screen_id, s.show_date, s.show_time::text,
                     s.price_per_ticket_cents, s.available_seats, s.show_status,
                     m.title, m.duration_min, t.theater_name, t.location
              FROM shows s
              JOIN movies m ON m.movie_id = s.movie_id
              JOIN theaters t ON t.theater_id = s.theater_id
              WHERE s.show_status = 'Active'`

	var args []any
	if f.MovieID != 0 {
		args = append(args, f.MovieID)
		query += ` AND s.movie_id = $` + strconv.Itoa(len(args))
	}
	if f.TheaterID != 0 {
		args = append(args, f.TheaterID)
		query += ` AND s.theater_id = $` + strconv.Itoa(len(args))
	}
	if f.Date != nil {
		args = append(args, *f.Date)
		query += ` AND s.show_date = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY s.show_date, s.show_time`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.ShowListing
	for rows.Next() {
		var l domain.ShowListing
		if err := rows.Scan(
			&l.ID, &l.MovieID, &l.TheaterID, &l.ScreenID, &l.Date, &l.Time,
			&l.PriceCents, &l.AvailableSeats, &l.Status,
			&l.MovieTitle, &l.DurationMin, &l.TheaterName, &l.Location,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// SeatMap returns every seat on the show's screen annotated Booked if a
// Confirmed booking for the show holds it, else Available. Cancelled
// bookings do not count.
func (r *ShowRepo) SeatMap(ctx context.Context, showID int64) ([]domain.SeatWithAvailability, error) {
	const op = "postgres.ShowRepo.SeatMap"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT st.seat_id, st.screen_id, st.row_label, st.seat_number, st.seat_type,
                CASE WHEN EXISTS (
                    SELECT 1
                    FROM booking_seats bs
                    JOIN bookings b ON b.booking_id = bs.booking_id
                    WHERE bs.seat_id = st.seat_id
                      AND b.show_id = sh.show_id
                      AND b.booking_status = 'Confirmed'
                ) THEN 'Booked' ELSE 'Available' END
       	 FROM shows sh
       	 JOIN seats st ON st.screen_id = sh.screen_id
      	 WHERE sh.show_id = $1
      	 ORDER BY st.row_label, st.seat_number`,
		showID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.SeatWithAvailability
	for rows.Next() {
		var sa domain.SeatWithAvailability
		var status string

		if err := rows.Scan(
			&sa.ID, &sa.ScreenID, &sa.RowLabel, &sa.SeatNumber, &sa.SeatType, &status,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}

		sa.Availability = domain.SeatAvailability(status)
		out = append(out, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
