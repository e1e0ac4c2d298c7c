package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
	"github.com/chaitanya-codes/MovieTix/internal/repository"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool: pool,
	}
}

func (s *Store) RunTx(
	ctx context.Context,
	opts *pgx.TxOptions,
	fn func(ctx context.Context, tx DB) error,
) error {
	txOpts := pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	}

	if opts != nil {
		txOpts.IsoLevel = opts.IsoLevel
		txOpts.AccessMode = opts.AccessMode
		txOpts.DeferrableMode = opts.DeferrableMode
	}

	tx, err := s.pool.BeginTx(ctx, txOpts)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (s *Store) Bookings() *BookingRepo { return &BookingRepo{pool: s.pool} }
func (s *Store) Shows() *ShowRepo       { return &ShowRepo{pool: s.pool} }
func (s *Store) Catalog() *CatalogRepo  { return &CatalogRepo{pool: s.pool} }
func (s *Store) Users() *UserRepo       { return &UserRepo{pool: s.pool} }

// Store implements repository.BookingStore by delegating to its repos.
// The booking unit runs at ReadCommitted: the show-row lock taken by
// ShowForUpdate is the per-show serialization point, so stricter isolation
// would only turn losers of the race into serialization failures instead
// of clean seat conflicts.

func (s *Store) InTx(
	ctx context.Context,
	fn func(ctx context.Context, tx repository.BookingTx) error,
) error {
	return s.RunTx(ctx, nil, func(ctx context.Context, db DB) error {
		return fn(ctx, &bookingTx{db: db})
	})
}

func (s *Store) GetShow(ctx context.Context, showID int64) (*domain.Show, error) {
	return s.Shows().Get(ctx, showID)
}

func (s *Store) SeatMap(ctx context.Context, showID int64) ([]domain.SeatWithAvailability, error) {
	return s.Shows().SeatMap(ctx, showID)
}

func (s *Store) GetBookingWithSeats(ctx context.Context, bookingID int64) (*domain.BookingWithSeats, error) {
	return s.Bookings().GetWithSeats(ctx, bookingID)
}
