// Package query serves the read-only catalog projections: movies,
// theaters, show listings and booking history. It never writes.
package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
	"github.com/chaitanya-codes/MovieTix/internal/repository"
	postgresrepo "github.com/chaitanya-codes/MovieTix/internal/repository/postgres"
	redisrepo "github.com/chaitanya-codes/MovieTix/internal/repository/redis"
)

type Config struct {
	MovieListTTL time.Duration
	ShowListTTL  time.Duration
}

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.MovieListTTL <= 0 {
		cfg.MovieListTTL = 60 * time.Second
	}

	if cfg.ShowListTTL <= 0 {
		cfg.ShowListTTL = 15 * time.Second
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

func (s *Service) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	const op = "service.query.ListMovies"

	if s.cache == nil {
		movies, err := s.store.Catalog().ListMovies(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		return movies, nil
	}

	movies, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyMovieList(),
		s.cfg.MovieListTTL,
		func(ctx context.Context) ([]domain.Movie, error) {
			return s.store.Catalog().ListMovies(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return movies, nil
}

// GetMovie retrieves a movie by its ID.
//
// Returns:
//   - error: query.ErrMovieNotFound if the movie is not found.
func (s *Service) GetMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	const op = "service.query.GetMovie"

	m, err := s.store.Catalog().GetMovie(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrMovieNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return m, nil
}

func (s *Service) ListTheaters(ctx context.Context) ([]domain.Theater, error) {
	const op = "service.query.ListTheaters"

	if s.cache == nil {
		theaters, err := s.store.Catalog().ListTheaters(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		return theaters, nil
	}

	theaters, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyTheaterList(),
		s.cfg.MovieListTTL,
		func(ctx context.Context) ([]domain.Theater, error) {
			return s.store.Catalog().ListTheaters(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return theaters, nil
}

// ListShows lists active shows, optionally filtered by movie, theater and
// date. Listings are cached briefly per filter combination.
func (s *Service) ListShows(ctx context.Context, f postgresrepo.ShowFilter) ([]domain.ShowListing, error) {
	const op = "service.query.ListShows"

	if s.cache == nil {
		shows, err := s.store.Shows().List(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		return shows, nil
	}

	shows, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyShowList(f.MovieID, f.TheaterID, f.Date),
		s.cfg.ShowListTTL,
		func(ctx context.Context) ([]domain.ShowListing, error) {
			return s.store.Shows().List(ctx, f)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return shows, nil
}

func (s *Service) ListUserBookings(ctx context.Context, userID int64) ([]domain.BookingSummary, error) {
	const op = "service.query.ListUserBookings"

	bookings, err := s.store.Bookings().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return bookings, nil
}
