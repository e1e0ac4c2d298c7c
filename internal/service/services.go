package service

import (
	postgres "github.com/chaitanya-codes/MovieTix/internal/repository/postgres"
	redis "github.com/chaitanya-codes/MovieTix/internal/repository/redis"
	"github.com/chaitanya-codes/MovieTix/internal/service/auth"
	"github.com/chaitanya-codes/MovieTix/internal/service/booking"
	"github.com/chaitanya-codes/MovieTix/internal/service/query"
)

type Services struct {
	Booking *booking.Service
	Query   *query.Service
	Auth    *auth.Service
}

type Config struct {
	Booking booking.Config
	Query   query.Config
	Auth    auth.Config
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redis.ShowsPubSub,
	limiter *redis.SlidingWindowLimiter,
	cfg Config,
) *Services {
	return &Services{
		Booking: booking.New(store, cache, pubsub, limiter, cfg.Booking),
		Query:   query.New(store, cache, cfg.Query),
		Auth:    auth.New(store.Users(), cfg.Auth),
	}
}
