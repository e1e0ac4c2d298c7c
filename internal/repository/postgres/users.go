package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
)

type UserRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *UserRepo) With(db DB) *UserRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *UserRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// CreateUser inserts a user and populates the generated ID and creation
// timestamp on the passed record.
//
// Returns:
//   - error: repository.ErrConflict if the username or email is taken.
func (r *UserRepo) CreateUser(ctx context.Context, u *domain.User) error {
	const op = "postgres.UserRepo.CreateUser"

	db := r.handle()

	err := db.QueryRow(ctx,
		`INSERT INTO users(username, email, password_hash, first_name, last_name)
       	 VALUES ($1, $2, $3, $4, $5)
      	 RETURNING user_id, created_at`,
		u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// UserByUsername retrieves a user by username.
//
// Returns:
//   - *domain.User: the user when found.
//   - error: repository.ErrNotFound if the user is not found.
func (r *UserRepo) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const op = "postgres.UserRepo.UserByUsername"

	db := r.handle()

	var u domain.User
	err := db.QueryRow(ctx,
		`SELECT user_id, username, email, password_hash, first_name, last_name, created_at
       	 FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &u, nil
}
