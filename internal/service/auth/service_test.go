package auth_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chaitanya-codes/MovieTix/internal/repository/memory"
	"github.com/chaitanya-codes/MovieTix/internal/service/auth"
)

var testSecret = []byte("test-secret")

func newAuthService() (*auth.Service, *memory.Store) {
	store := memory.NewStore()
	return auth.New(store, auth.Config{JWTSecret: testSecret}), store
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, store := newAuthService()

	u, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cretpass", "Alice", "Doe")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Empty(t, u.PasswordHash)

	stored, err := store.UserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cretpass")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cretpass", "Alice", "Doe")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "second@example.com", "s3cretpass", "Alice", "Doe")
	assert.ErrorIs(t, err, auth.ErrUserExists)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cretpass", "Alice", "Doe")
	require.NoError(t, err)

	t.Run("valid credentials issue a parsable token", func(t *testing.T) {
		token, u, err := svc.Login(context.Background(), "alice", "s3cretpass")
		require.NoError(t, err)
		assert.Empty(t, u.PasswordHash)

		parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
			return testSecret, nil
		})
		require.NoError(t, err)
		require.True(t, parsed.Valid)

		claims, ok := parsed.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, "alice", claims["username"])
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "alice", "wrongpass")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "nobody", "whatever")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
