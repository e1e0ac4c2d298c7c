package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
)

type CatalogRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *CatalogRepo) With(db DB) *CatalogRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *CatalogRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *CatalogRepo) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	const op = "postgres.CatalogRepo.ListMovies"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT movie_id, title, genre, duration_min, rating, description, release_date, poster_url
       	 FROM movies
      	 ORDER BY release_date DESC`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Genre, &m.DurationMin, &m.Rating,
			&m.Description, &m.ReleaseDate, &m.PosterURL,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// GetMovie retrieves a movie by its ID.
//
// Returns:
//   - *domain.Movie: the movie when found.
//   - error: repository.ErrNotFound if the movie is not found.
func (r *CatalogRepo) GetMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	const op = "postgres.CatalogRepo.GetMovie"

	db := r.handle()

	var m domain.Movie
	err := db.QueryRow(ctx,
		`SELECT movie_id, title, genre, duration_min, rating, description, release_date, poster_url
       	 FROM movies WHERE movie_id = $1`,
		id,
	).Scan(
		&m.ID, &m.Title, &m.Genre, &m.DurationMin, &m.Rating,
		&m.Description, &m.ReleaseDate, &m.PosterURL,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &m, nil
}

func (r *CatalogRepo) ListTheaters(ctx context.Context) ([]domain.Theater, error) {
	const op = "postgres.CatalogRepo.ListTheaters"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT theater_id, theater_name, location, city, contact_phone, total_seats
       	 FROM theaters
      	 ORDER BY theater_name`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Theater
	for rows.Next() {
		var t domain.Theater
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Location, &t.City, &t.ContactPhone, &t.TotalSeats,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
