// Package auth handles registration and login. Passwords are stored only
// as bcrypt hashes and never compared in plaintext.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
	"github.com/chaitanya-codes/MovieTix/internal/repository"
)

// UserStore is the persistence contract auth needs.
type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) error
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type Config struct {
	JWTSecret []byte
	TokenTTL  time.Duration
}

type Service struct {
	users UserStore
	cfg   Config
}

func New(users UserStore, cfg Config) *Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}

	return &Service{
		users: users,
		cfg:   cfg,
	}
}

// Register creates a user with a bcrypt-hashed password.
//
// Returns:
//   - *domain.User: the created user (PasswordHash cleared).
//   - error: auth.ErrUserExists if the username or email is taken.
func (s *Service) Register(
	ctx context.Context,
	username, email, password, firstName, lastName string,
) (*domain.User, error) {
	const op = "service.auth.Register"

	if username == "" || email == "" || password == "" || firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%s: missing required fields", op)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s:%w", op, ErrUserExists)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	u.PasswordHash = ""

	return u, nil
}

// Login verifies the credentials and issues a signed HS256 token.
//
// Returns:
//   - string: the signed JWT.
//   - *domain.User: the authenticated user (PasswordHash cleared).
//   - error: auth.ErrInvalidCredentials on unknown user or wrong password.
func (s *Service) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	const op = "service.auth.Login"

	u, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, fmt.Errorf("%s:%w", op, ErrInvalidCredentials)
		}

		return "", nil, fmt.Errorf("%s:%w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%s:%w", op, ErrInvalidCredentials)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      u.ID,
		"username": u.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.cfg.JWTSecret)
	if err != nil {
		return "", nil, fmt.Errorf("%s:%w", op, err)
	}

	u.PasswordHash = ""

	return signed, u, nil
}
