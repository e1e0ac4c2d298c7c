package uow

import (
	"context"

	"github.com/chaitanya-codes/MovieTix/internal/repository"
)

// AfterCommit is a function that runs after a successful transaction commit.
type AfterCommit func(ctx context.Context)

// TxRunner starts an atomic unit and runs a function inside it.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx repository.BookingTx) error) error
}

// UoW represents a unit of work.
type UoW struct {
	store TxRunner
}

func NewUoW(store TxRunner) *UoW {
	return &UoW{store: store}
}

// Do runs fn inside the transaction. After a successful commit,
// it executes all after-commit hooks.
func (u *UoW) Do(
	ctx context.Context,
	fn func(ctx context.Context, tx repository.BookingTx, after func(AfterCommit)) error,
) error {
	var hooks []AfterCommit

	err := u.store.InTx(ctx, func(ctx context.Context, tx repository.BookingTx) error {
		return fn(ctx, tx, func(h AfterCommit) {
			hooks = append(hooks, h)
		})
	})
	if err != nil {
		return err
	}

	for _, h := range hooks {
		h(ctx)
	}

	return nil
}
